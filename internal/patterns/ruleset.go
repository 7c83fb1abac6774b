package patterns

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
)

// Pattern identifiers emitted by the matcher.
const (
	PatternBlacklisted    = "blacklisted_address"
	PatternRapidTransfers = "rapid_transfers"
	PatternUnusualAmounts = "unusual_amounts"
	PatternNewWalletBurst = "new_wallet_activity"
)

// Ruleset is one immutable configuration snapshot: the blacklist plus the
// tunable parameters of every rule. Reloading installs a whole new snapshot;
// an installed Ruleset is never mutated.
type Ruleset struct {
	Version   string
	Blacklist map[string]struct{}

	RapidWindowTxs  int
	RapidWindowSecs int64
	RoundUnit       float64
	RoundShare      float64
	NewWalletMaxAge float64
	NewWalletMinTxs int
}

// DefaultRuleset returns the built-in configuration, including the seed
// blacklist entries shipped with the scanner.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		Version: "builtin",
		Blacklist: map[string]struct{}{
			"0x1234567890123456789012345678901234567890": {},
			"0xabcdefabcdefabcdefabcdefabcdefabcdefabcd": {},
			"0x9876543210987654321098765432109876543210": {},
		},
		RapidWindowTxs:  10,
		RapidWindowSecs: 3600,
		RoundUnit:       1_000_000,
		RoundShare:      0.5,
		NewWalletMaxAge: 7,
		NewWalletMinTxs: 50,
	}
}

// IsBlacklisted reports blacklist membership, case-insensitive.
func (r *Ruleset) IsBlacklisted(address string) bool {
	_, ok := r.Blacklist[strings.ToLower(address)]
	return ok
}

type rulesetFile struct {
	Version   string   `json:"version"`
	Blacklist []string `json:"blacklist"`
}

// LoadRuleset reads a ruleset file and merges it over the defaults. The file
// carries a version tag and additional blacklist entries.
func LoadRuleset(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ruleset: %w", err)
	}

	var file rulesetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse ruleset: %w", err)
	}

	ruleset := DefaultRuleset()
	if file.Version != "" {
		ruleset.Version = file.Version
	}
	for _, address := range file.Blacklist {
		address = strings.ToLower(strings.TrimSpace(address))
		if address == "" {
			continue
		}
		ruleset.Blacklist[address] = struct{}{}
	}

	return ruleset, nil
}

// Registry hands out the current Ruleset snapshot and supports atomic
// replacement for hot reload.
type Registry struct {
	current atomic.Pointer[Ruleset]
}

func NewRegistry(ruleset *Ruleset) *Registry {
	if ruleset == nil {
		ruleset = DefaultRuleset()
	}
	registry := &Registry{}
	registry.current.Store(ruleset)
	return registry
}

// Current returns the installed snapshot.
func (r *Registry) Current() *Ruleset {
	return r.current.Load()
}

// Reload atomically installs a new snapshot.
func (r *Registry) Reload(ruleset *Ruleset) {
	if ruleset == nil {
		return
	}
	r.current.Store(ruleset)
}
