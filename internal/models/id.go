package models

import (
	"fmt"
	"strconv"
)

// ID is a store-assigned record identity. Callers only ever see its string
// form; conversion happens at the serialization boundary, never inside
// aggregation or ranking logic.
type ID uint

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return ID(v), nil
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
