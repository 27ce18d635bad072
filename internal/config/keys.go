package config

const (
	KeyLogLevel          = "log_level"
	KeyTemplatesDir      = "templates_dir"
	KeySeedTemplates     = "seed_templates"
	KeyMaxDiffLines      = "max_diff_lines"
	KeyMaxResponseTokens = "max_response_tokens"
	KeyGitBinary         = "git_binary"
	KeyGitTimeout        = "git_timeout"
	KeyTransport         = "transport"
	KeyHost              = "host"
	KeyPort              = "port"
	KeyEndpointPath      = "endpoint_path"
)
