package config

const (
	defaultConfigPath      = "~/.config/textprep/config.toml"
	projectConfigName      = "textprep.toml"
	defaultPDFInputDir     = "./PDF"
	defaultPDFOutputDir    = "./TXT"
	defaultPDFPattern      = "*.pdf"
	defaultSubtitlePattern = "./SRT/*.srt"
	defaultSubtitleOutput  = "./TXT"
	defaultSubtitleSuffix  = "_clean"
	defaultEncoding        = "utf-8"
	defaultDecodeErrors    = DecodeIgnore
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Decode error modes accepted by subtitles.decode_errors.
const (
	DecodeIgnore  = "ignore"
	DecodeReplace = "replace"
)

// Default returns a Config populated with repository defaults: PDFs from ./PDF,
// subtitles from ./SRT and all text into ./TXT.
func Default() Config {
	return Config{
		PDF: PDF{
			InputDir:  defaultPDFInputDir,
			OutputDir: defaultPDFOutputDir,
			Pattern:   defaultPDFPattern,
		},
		Subtitles: Subtitles{
			Pattern:      defaultSubtitlePattern,
			OutputDir:    defaultSubtitleOutput,
			Suffix:       defaultSubtitleSuffix,
			Encoding:     defaultEncoding,
			DecodeErrors: defaultDecodeErrors,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
