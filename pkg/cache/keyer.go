package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Keyer builds cache keys. Implementations must be deterministic: equal
// inputs give equal keys.
type Keyer interface {
	// ArtifactKey keys one rendered output of a document.
	ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the screen constants that change a layout, and with it
// every artifact.
type LayoutKeyOpts struct {
	ScreenHeight  float64 `json:"screen_height,omitempty"`
	ScreenPadding float64 `json:"screen_padding,omitempty"`
	ScreenGap     float64 `json:"screen_gap,omitempty"`
	CaptionHeight float64 `json:"caption_height,omitempty"`
	Strict        bool    `json:"strict,omitempty"`
}

// ArtifactKeyOpts are the inputs besides the layout that change an output.
type ArtifactKeyOpts struct {
	Layout LayoutKeyOpts `json:"layout"`
	Format string        `json:"format"`
	Style  string        `json:"style,omitempty"`
	Seed   uint64        `json:"seed,omitempty"`
	Extra  string        `json:"extra,omitempty"` // hash of any further render settings
}

// Hash returns the hex SHA-256 of data (64 characters). Sources are keyed by
// their hash so the key never carries document text.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DefaultKeyer keys artifacts as "artifact:<sha256>" over the source hash and
// the JSON form of the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	// ArtifactKeyOpts only holds plain fields, so Marshal cannot fail.
	b, _ := json.Marshal(opts)
	return "artifact:" + Hash(append([]byte(sourceHash+"\x00"), b...))
}

// ScopedKeyer namespaces another keyer, so tools sharing one Redis instance
// keep apart: scope "wireframe" yields "wireframe:artifact:...".
type ScopedKeyer struct {
	inner Keyer
	scope string
}

// NewScopedKeyer wraps inner (the DefaultKeyer when nil) under scope. A
// trailing ":" on scope is optional.
func NewScopedKeyer(inner Keyer, scope string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, scope: strings.TrimSuffix(scope, ":")}
}

func (k *ScopedKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	key := k.inner.ArtifactKey(sourceHash, opts)
	if k.scope == "" {
		return key
	}
	return k.scope + ":" + key
}
