package language

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"review-insights-go/internal/aggregator"
	"review-insights-go/internal/types"
)

// OthersLabel collects codes that do not resolve to a real language.
const OthersLabel = "Others"

type Resolver struct {
	namer Namer
	log   *logrus.Entry
}

// NewResolver builds a resolver. A nil namer behaves as an unavailable
// naming service; a nil log discards warnings.
func NewResolver(namer Namer, log *logrus.Entry) *Resolver {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Resolver{namer: namer, log: log.WithField("component", "language.resolver")}
}

// Resolve sums counts per display name, in first-seen order. Unknown codes
// and codes without linguistic content all land in OthersLabel. It never
// fails: when the namer is unavailable every count goes to OthersLabel.
func (r *Resolver) Resolve(entries []types.LanguageCount) *aggregator.Tally {
	out := aggregator.NewTally()
	unavailable := r.namer == nil
	for _, e := range entries {
		name := OthersLabel
		if !unavailable {
			n, err := r.namer.Name(e.LanguageCode)
			switch {
			case errors.Is(err, ErrResolutionUnavailable):
				unavailable = true
			case err != nil:
				r.log.WithField("code", e.LanguageCode).Debug("unresolved language code")
			case n != "" && n != NoLinguisticContent:
				name = n
			}
		}
		out.Increment(name, e.Count)
	}
	if unavailable {
		r.log.WithField("entries", len(entries)).Warn("language resolution unavailable, grouping under " + OthersLabel)
		return othersOnly(entries)
	}
	return out
}

func othersOnly(entries []types.LanguageCount) *aggregator.Tally {
	t := aggregator.NewTally()
	for _, e := range entries {
		t.Increment(OthersLabel, e.Count)
	}
	return t
}
