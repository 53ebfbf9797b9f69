package domain

import "time"

// RecordSet is the username-keyed accumulation map for contributor records.
// It remembers insertion order so that later stable sorting has a
// deterministic base order. One RecordSet is owned by each repository's
// collection pass; a second, run-wide set accumulates across repositories.
type RecordSet struct {
	byUser map[string]*ContributorRecord
	order  []string
}

// NewRecordSet creates an empty RecordSet.
func NewRecordSet() *RecordSet {
	return &RecordSet{byUser: make(map[string]*ContributorRecord)}
}

// Get returns the record for a username, if present.
func (s *RecordSet) Get(username string) (*ContributorRecord, bool) {
	rec, ok := s.byUser[username]
	return rec, ok
}

// Put inserts a record for a username not yet present.
func (s *RecordSet) Put(rec *ContributorRecord) {
	if _, ok := s.byUser[rec.Username]; !ok {
		s.order = append(s.order, rec.Username)
	}
	s.byUser[rec.Username] = rec
}

// Len returns the number of records in the set.
func (s *RecordSet) Len() int {
	return len(s.byUser)
}

// Records returns all records in insertion order.
func (s *RecordSet) Records() []*ContributorRecord {
	records := make([]*ContributorRecord, 0, len(s.order))
	for _, username := range s.order {
		records = append(records, s.byUser[username])
	}
	return records
}

// Merge folds another RecordSet into this one. Usernames absent from this
// set are inserted directly; usernames present in both are merged with
// ContributorRecord.MergeFrom.
func (s *RecordSet) Merge(incoming *RecordSet, now time.Time) {
	for _, rec := range incoming.Records() {
		existing, ok := s.byUser[rec.Username]
		if !ok {
			s.Put(rec)
			continue
		}
		existing.MergeFrom(rec, now)
	}
}
