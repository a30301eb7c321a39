package dedup

import (
	"strconv"

	"github.com/arthur-debert/mediatidy/pkg/types"
)

// Groups returns the duplicate groups among records, each with more than one
// member, in first-seen order with members in discovery order.
//
// Records are narrowed by size, then by a digest of their first bytes, and
// only the remaining candidates are fully fingerprinted. The result is the
// same as grouping every record by full fingerprint.
func (r *Resolver) Groups(records []*types.FileRecord) []types.Group {
	live := types.Live(records)

	candidates := make(map[*types.FileRecord]bool)
	for _, bySize := range types.Multi(types.GroupBy(live, sizeKey)) {
		for _, byQuick := range types.Multi(types.GroupBy(bySize.Records, r.quickKey)) {
			for _, rec := range byQuick.Records {
				candidates[rec] = true
			}
		}
	}

	return types.Multi(types.GroupBy(live, func(rec *types.FileRecord) (string, bool) {
		if !candidates[rec] {
			return "", false
		}
		return r.fullKey(rec)
	}))
}

func sizeKey(rec *types.FileRecord) (string, bool) {
	return strconv.FormatInt(rec.Size, 10), true
}

func (r *Resolver) quickKey(rec *types.FileRecord) (string, bool) {
	q, err := r.fp.Quick(rec)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", rec.Path).Msg("Cannot read file, leaving it out of dedup")
		return "", false
	}
	return q, true
}

func (r *Resolver) fullKey(rec *types.FileRecord) (string, bool) {
	fp, err := r.fp.Fingerprint(rec)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", rec.Path).Msg("Cannot fingerprint file, leaving it out of dedup")
		return "", false
	}
	return fp, true
}
