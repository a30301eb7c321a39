package types

// Group is an ordered set of records sharing a grouping key.
// Records keep discovery order.
type Group struct {
	Key     string
	Records []*FileRecord
}

// Len returns the number of records in the group
func (g Group) Len() int {
	return len(g.Records)
}

// GroupBy partitions records by key. Groups come back in the order their key
// was first seen; records whose key function reports false, and records that
// are already Gone, are left out.
func GroupBy(records []*FileRecord, key func(*FileRecord) (string, bool)) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range records {
		if r.Gone {
			continue
		}
		k, ok := key(r)
		if !ok {
			continue
		}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// Multi returns only the groups holding more than one record
func Multi(groups []Group) []Group {
	var out []Group
	for _, g := range groups {
		if g.Len() > 1 {
			out = append(out, g)
		}
	}
	return out
}

// Live returns the records that have not been deleted
func Live(records []*FileRecord) []*FileRecord {
	out := make([]*FileRecord, 0, len(records))
	for _, r := range records {
		if !r.Gone {
			out = append(out, r)
		}
	}
	return out
}
