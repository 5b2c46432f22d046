// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package units converts byte counts between decimal (kB, MB, ...) and
// binary (KiB, MiB, ...) size units.
package units

import (
	"fmt"
	"math"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Unit is a byte-size unit. B through PB scale by powers of 1000, KiB
// through PiB by powers of 1024. The set is closed; use ParseUnit to map
// user input onto it.
type Unit int

const (
	B Unit = iota
	KB
	MB
	GB
	TB
	PB
	KiB
	MiB
	GiB
	TiB
	PiB
)

var unitNames = map[Unit]string{
	B:   "B",
	KB:  "KB",
	MB:  "MB",
	GB:  "GB",
	TB:  "TB",
	PB:  "PB",
	KiB: "KiB",
	MiB: "MiB",
	GiB: "GiB",
	TiB: "TiB",
	PiB: "PiB",
}

func (u Unit) String() string {
	name, ok := unitNames[u]
	if !ok {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return name
}

// Bytes returns the number of bytes one of this unit represents.
func (u Unit) Bytes() float64 {
	if u >= KiB {
		return math.Pow(1024, float64(u-KiB+1))
	}
	return math.Pow(1000, float64(u))
}

// ParseUnit maps a unit name onto the closed unit set, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	for u, name := range unitNames {
		if strings.EqualFold(s, name) {
			return u, nil
		}
	}
	return B, errors.Errorf("unknown size unit %q", s)
}

// FromBytes converts a raw byte count into the target unit.
func FromBytes(bytes float64, to Unit) float64 {
	return bytes / to.Bytes()
}

// ToBytes converts a size expressed in from into a raw byte count.
func ToBytes(size float64, from Unit) float64 {
	return size * from.Bytes()
}

// Convert re-expresses size from one unit in another.
func Convert(size float64, from, to Unit) float64 {
	return FromBytes(ToBytes(size, from), to)
}

// Format renders size with two decimal places and the unit name.
func Format(size float64, u Unit) string {
	return fmt.Sprintf("%.2f %s", size, u)
}
