// Package locale holds the static data tables the domain generators
// draw their candidate values from. Tables are pure data: nothing here
// touches a random source or performs I/O at generation time.
package locale

import "sort"

// Default is the locale used when none is configured.
const Default = "en"

// Set is the full data table for one locale. Phone, zip and street
// formats are template strings where every '#' stands for one random
// digit and {building}, {street}, {zip} and {city} are substituted by
// the address generator.
type Set struct {
	Code string

	FirstNamesFemale []string
	FirstNamesMale   []string
	LastNames        []string

	PhoneFormats []string

	Cities         []string
	Streets        []string
	StreetFormats  []string
	AddressFormats []string
	ZipFormats     []string
	Countries      []string

	FreeEmailDomains []string
	TLDs             []string
}

var tables = map[string]*Set{
	"en": english,
	"fr": french,
	"de": german,
	"es": spanish,
	"ar": arabic,
}

// Codes returns the supported locale codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(tables))
	for code := range tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Supported reports whether code names a locale this library ships
// data for.
func Supported(code string) bool {
	_, ok := tables[code]
	return ok
}

// Table returns the data set for code. Unknown codes fall back to the
// default table; the generation context validates codes before any
// generator gets here.
func Table(code string) *Set {
	if set, ok := tables[code]; ok {
		return set
	}
	return tables[Default]
}

// Words returns the shared latin word list used for free-text data.
func Words() []string {
	return words
}
