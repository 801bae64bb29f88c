// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "slices"

// IDSet is a set of user IDs. The zero value is an empty, read-only set;
// use NewIDSet before calling Add.
type IDSet map[UserID]struct{}

func NewIDSet(ids ...UserID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Add(id UserID) {
	s[id] = struct{}{}
}

func (s IDSet) Contains(id UserID) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s)
}

// Union returns a new set holding every member of s and the others.
func (s IDSet) Union(others ...IDSet) IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	for _, o := range others {
		for id := range o {
			out[id] = struct{}{}
		}
	}
	return out
}

// Minus returns a new set holding the members of s found in none of the others.
func (s IDSet) Minus(others ...IDSet) IDSet {
	out := make(IDSet, len(s))
outer:
	for id := range s {
		for _, o := range others {
			if o.Contains(id) {
				continue outer
			}
		}
		out[id] = struct{}{}
	}
	return out
}

// Intersect returns a new set holding the members present in both s and o.
func (s IDSet) Intersect(o IDSet) IDSet {
	out := make(IDSet)
	for id := range s {
		if o.Contains(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []UserID {
	ids := make([]UserID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
