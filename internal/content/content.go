// Package content supplies challenge words and boss sentences.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/wordfall/internal/rng"
)

// Tier selects a word pool difficulty.
type Tier string

// Word pool tiers, from easiest to hardest.
const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
	TierExpert Tier = "expert"
)

// Tiers lists all tiers in ascending difficulty order.
var Tiers = []Tier{TierEasy, TierMedium, TierHard, TierExpert}

// Provider serves per-tier word pools and generated boss sentences.
type Provider struct {
	tiers     map[Tier][]string
	templates map[Tier][]string
	banks     map[string][]string
}

// NewProvider returns a provider backed by the built-in word data.
func NewProvider() *Provider {
	tiers := make(map[Tier][]string, len(defaultTiers))
	for tier, words := range defaultTiers {
		tiers[tier] = append([]string(nil), words...)
	}
	return &Provider{
		tiers:     tiers,
		templates: defaultTemplates,
		banks:     defaultBanks,
	}
}

// LoadTierOverrides replaces tier pools with files named <tier>.txt found in
// dir. Tiers without an override file keep the built-in pool.
func (p *Provider) LoadTierOverrides(dir string) error {
	if dir == "" {
		return nil
	}
	for _, tier := range Tiers {
		path := filepath.Join(dir, string(tier)+".txt")
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to stat tier file: %w", err)
		}
		words, err := LoadWords(path)
		if err != nil {
			return fmt.Errorf("failed to load %s tier: %w", tier, err)
		}
		p.tiers[tier] = words
	}
	return nil
}

// WordsForTier returns the word pool for a tier. Unknown tiers fall back to
// the expert pool.
func (p *Provider) WordsForTier(tier Tier) []string {
	if words, ok := p.tiers[tier]; ok {
		return words
	}
	return p.tiers[TierExpert]
}

// GenerateSentence composes a boss sentence from a tier template, filling
// each placeholder slot from its word bank.
func (p *Provider) GenerateSentence(tier Tier, r rng.Rand) string {
	templates, ok := p.templates[tier]
	if !ok || len(templates) == 0 {
		templates = p.templates[TierExpert]
	}
	template := templates[r.Intn(len(templates))]
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		close := strings.IndexByte(rest[open:], '}')
		if close < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:open])
		slot := rest[open+1 : open+close]
		bank := p.banks[slot]
		if len(bank) == 0 {
			b.WriteString(slot)
		} else {
			b.WriteString(bank[r.Intn(len(bank))])
		}
		rest = rest[open+close+1:]
	}
	return b.String()
}

// Validate reports an error when any tier pool, template tier, or slot bank
// is empty. A play session must not start without content.
func (p *Provider) Validate() error {
	for _, tier := range Tiers {
		if len(p.tiers[tier]) == 0 {
			return fmt.Errorf("word pool for tier %s is empty", tier)
		}
		if len(p.templates[tier]) == 0 {
			return fmt.Errorf("sentence templates for tier %s are empty", tier)
		}
	}
	for slot, bank := range p.banks {
		if len(bank) == 0 {
			return fmt.Errorf("word bank for slot %s is empty", slot)
		}
	}
	return nil
}
