// Package editor holds the mutable entry list of a wheel being configured.
package editor

import (
	"errors"
	"strconv"
	"strings"

	"wheelspin-backend/internal/features/wheel/models"
)

var (
	ErrEntryIndexOutOfRange = errors.New("entry index out of range")
	ErrInvalidEntryWeight   = errors.New("entry weight must be a positive integer")
	ErrUnknownEntryField    = errors.New("unknown entry field")
)

// Field names an editable entry attribute.
type Field string

const (
	FieldLabel  Field = "label"
	FieldWeight Field = "weight"
)

const defaultWeight = 1

// Store is an ordered list of entries. Not safe for concurrent use.
type Store struct {
	entries []models.Entry
}

// New creates a store seeded with entries.
func New(entries ...models.Entry) *Store {
	return &Store{entries: append([]models.Entry(nil), entries...)}
}

// Add appends a blank entry with weight 1 and returns its index.
func (s *Store) Add() int {
	s.entries = append(s.entries, models.Entry{Weight: defaultWeight})
	return len(s.entries) - 1
}

// Update sets one field of the entry at index. A weight that is not a
// positive integer is rejected and the entry is left unchanged.
func (s *Store) Update(index int, field Field, value string) error {
	if index < 0 || index >= len(s.entries) {
		return ErrEntryIndexOutOfRange
	}

	switch field {
	case FieldLabel:
		s.entries[index].Label = value
	case FieldWeight:
		weight, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || weight < 1 {
			return ErrInvalidEntryWeight
		}
		s.entries[index].Weight = weight
	default:
		return ErrUnknownEntryField
	}
	return nil
}

// Remove deletes the entry at index, preserving the order of the rest.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.entries) {
		return ErrEntryIndexOutOfRange
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return nil
}

func (s *Store) Count() int {
	return len(s.entries)
}

func (s *Store) TotalWeight() int {
	total := 0
	for _, e := range s.entries {
		total += e.Weight
	}
	return total
}

// Entries returns a copy of the current list.
func (s *Store) Entries() []models.Entry {
	return append([]models.Entry(nil), s.entries...)
}
