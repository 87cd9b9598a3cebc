package cdpchat

// Default tuning values. The relevance floor and scoring weights are
// deliberately configuration, not constants baked into the engine.
const (
	DefaultRelevanceFloor = 0.1
	DefaultTopK           = 3
	DefaultChunkMaxLen    = 500
	DefaultChunkOverlap   = 100
)

// Config holds the recognized configuration options for the chatbot.
type Config struct {
	// RelevanceFloor is the minimum score a chunk must exceed to count
	// as a valid match. Chunks scoring at or below the floor are dropped.
	RelevanceFloor float64 `yaml:"relevance_floor"`

	// TopK bounds the number of ranked chunks returned per platform.
	TopK int `yaml:"top_k"`

	// ChunkMaxLen is the maximum chunk length in characters.
	ChunkMaxLen int `yaml:"chunk_max_len"`

	// ChunkOverlap is the approximate character overlap between
	// adjacent chunks.
	ChunkOverlap int `yaml:"chunk_overlap"`

	// Keywords maps each platform to the terms (platform name and
	// product-term aliases) that identify it in a question.
	Keywords map[Platform][]string `yaml:"keywords"`

	// StopWords are discarded during normalization.
	StopWords []string `yaml:"stop_words"`

	// Sources maps each platform to its documentation root URL for the
	// offline corpus build.
	Sources map[Platform]string `yaml:"sources"`
}

// DefaultConfig returns a Config with working defaults for all four
// platforms.
func DefaultConfig() *Config {
	return &Config{
		RelevanceFloor: DefaultRelevanceFloor,
		TopK:           DefaultTopK,
		ChunkMaxLen:    DefaultChunkMaxLen,
		ChunkOverlap:   DefaultChunkOverlap,
		Keywords: map[Platform][]string{
			PlatformSegment:   {"segment", "segment's"},
			PlatformMParticle: {"mparticle", "mparticle's"},
			PlatformLytics:    {"lytics", "lytics's"},
			PlatformZeotap:    {"zeotap", "zeotap's"},
		},
		StopWords: DefaultStopWords(),
		Sources: map[Platform]string{
			PlatformSegment:   "https://segment.com/docs/",
			PlatformMParticle: "https://docs.mparticle.com/",
			PlatformLytics:    "https://docs.lytics.com/",
			PlatformZeotap:    "https://docs.zeotap.com/home/en-us/",
		},
	}
}

// Validate returns an error if the configuration is malformed.
// A missing keyword list for a declared platform is fatal at startup.
func (c *Config) Validate() error {
	if c.RelevanceFloor < 0 {
		return Errorf(EINVALID, "relevance floor must not be negative")
	}
	if c.TopK <= 0 {
		return Errorf(EINVALID, "top-k must be positive")
	}
	if c.ChunkMaxLen <= 0 {
		return Errorf(EINVALID, "chunk max length must be positive")
	}
	if c.ChunkOverlap < 0 {
		return Errorf(EINVALID, "chunk overlap must not be negative")
	}
	if c.ChunkOverlap >= c.ChunkMaxLen {
		return Errorf(EINVALID, "chunk overlap must be smaller than chunk max length")
	}
	for _, p := range Platforms() {
		if len(c.Keywords[p]) == 0 {
			return Errorf(EINVALID, "missing keyword list for platform %q", p.DisplayName())
		}
	}
	return nil
}
