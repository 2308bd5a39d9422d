// Package assets embeds the default dictionary data files shipped with the
// module: grammatical suffixes, proper nouns, Cyrillic-to-Latin
// substitutions, healing targets, and default shield patterns.
package assets

import _ "embed"

//go:embed qoshimchalar.txt
var Suffixes string

//go:embed atoqlilar.txt
var ProperNouns string

//go:embed almashuvchilar.txt
var Substitutions string

//go:embed tuzatishlar.txt
var Healing string

//go:embed qalqonlar.txt
var Shields string
