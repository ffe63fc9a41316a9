package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Dir               string `usage:"storage root, one subdirectory per record type"`
	SaveOnStop        bool   `usage:"save every repository on shutdown"`
	LogLevel          string `usage:"log level: debug, info, warn or error"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          "127.0.0.1:8080",
		Dir:               "storage",
		SaveOnStop:        false,
		LogLevel:          "info",
		EnableCompression: true,
		ShowBanner:        true,
	}
}
