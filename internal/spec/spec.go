package spec

// RewriteSpec configures the placeholder engine. Zero values mean "use the
// engine default".
type RewriteSpec struct {
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
	MaxNameLen int    `yaml:"max_name_len"`
	Strict     bool   `yaml:"strict"`
	Log        bool   `yaml:"log"`
}

// ResolverSpec selects where placeholder values come from.
type ResolverSpec struct {
	Kind    string `yaml:"kind"`    // "table" (default) or "grpc"
	Vars    string `yaml:"vars"`    // variable table file for kind "table"
	Address string `yaml:"address"` // e.g. "localhost:7070" for kind "grpc"
}

type StdoutSinkSpec struct {
	DelayMS int `yaml:"delay_ms"` // artificial per-push delay
	FlushMS int `yaml:"flush_ms"` // 0 = flush on every push
}

type FileSinkSpec struct {
	Path   string `yaml:"path"`
	Append bool   `yaml:"append"`
}

type KafkaSinkSpec struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	Acks    int16    `yaml:"required_acks"` // 0,1,-1
}

type sinkConfigs struct {
	Stdout StdoutSinkSpec `yaml:"stdout"`
	File   FileSinkSpec   `yaml:"file"`
	Kafka  KafkaSinkSpec  `yaml:"kafka"`
}

type File struct {
	SchemaVersion string `yaml:"schema_version"`

	Source struct {
		Kind       string `yaml:"kind"`   // "file", "stdin" or "kafka"
		Driver     string `yaml:"driver"` // kafka driver, e.g. "sarama"
		Config     string `yaml:"config"` // kafka source config file
		Path       string `yaml:"path"`   // input path for kind "file"
		ChunkBytes int    `yaml:"chunk_bytes"`
	} `yaml:"source"`

	Rewrite  RewriteSpec  `yaml:"rewrite"`
	Resolver ResolverSpec `yaml:"resolver"`

	Sinks       []string    `yaml:"sinks"`
	SinkConfigs sinkConfigs `yaml:"sink_configs"`
}
