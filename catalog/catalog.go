// Package catalog is the published list of named CRC algorithms: a set of
// Rocksoft/RevEng parameter tuples (see package crc) plus their aliases
// and catalogue check/residue values, nothing more. It contributes no
// algorithm of its own -- every entry is just data bound to the core
// engine in package crc.
//
// The registration pattern is a mutex-guarded map, populated at init
// time, panicking on duplicate registration since that is a programming
// error never reachable with real input.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bemasher/paramcrc/crc"
)

// Entry is a named, registered CRC algorithm: its parameters plus the
// catalogue's published check value (Calculate over "123456789") and
// residue constant.
type Entry struct {
	Name    string
	Aliases []string
	Params  crc.Params
	Check   uint64
	Residue uint64
}

var (
	mu       sync.Mutex
	entries  = make(map[string]*Entry) // canonical name -> entry
	byAlias  = make(map[string]*Entry) // lower-cased name or alias -> entry
)

// Register adds name (and its aliases) to the catalog. It panics if name
// or any alias is already registered -- catalog population happens once,
// at package init, from a fixed list transcribed from the RevEng
// catalogue, so a collision here is always a bug in that list.
func Register(name string, aliases []string, params crc.Params, check, residue uint64) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[name]; dup {
		panic(fmt.Sprintf("catalog: duplicate registration: %s", name))
	}

	e := &Entry{Name: name, Aliases: aliases, Params: params, Check: check, Residue: residue}
	entries[name] = e

	for _, key := range append([]string{name}, aliases...) {
		k := normalize(key)
		if existing, dup := byAlias[k]; dup {
			panic(fmt.Sprintf("catalog: %s and %s both claim alias %q", existing.Name, name, key))
		}
		byAlias[k] = e
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup finds an entry by canonical name or alias, case-insensitively.
func Lookup(name string) (Entry, bool) {
	mu.Lock()
	defer mu.Unlock()

	e, ok := byAlias[normalize(name)]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Names returns every canonical entry name, sorted.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Verify reports whether data's checksum under e's parameters matches a
// caller-supplied expected value.
func Verify(e Entry, data []byte, expected uint64) bool {
	return crc.Calculate(e.Params, data) == expected
}
