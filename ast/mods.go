package ast

// Mods is a modifier bitset using the JVM access-flag values, which is the
// encoding front ends hand over unchanged.
type Mods uint32

const (
	ModPublic       Mods = 0x0001
	ModPrivate      Mods = 0x0002
	ModProtected    Mods = 0x0004
	ModStatic       Mods = 0x0008
	ModFinal        Mods = 0x0010
	ModSynchronized Mods = 0x0020
	ModVolatile     Mods = 0x0040
	ModTransient    Mods = 0x0080
	ModNative       Mods = 0x0100
	ModInterface    Mods = 0x0200
	ModAbstract     Mods = 0x0400
)

// modWords fixes the order modifier keywords appear in rendered output,
// independent of how the bits were set.
var modWords = []struct {
	flag Mods
	word string
}{
	{ModAbstract, "abstract"},
	{ModFinal, "final"},
	{ModInterface, "interface"},
	{ModNative, "native"},
	{ModPrivate, "private"},
	{ModProtected, "protected"},
	{ModPublic, "public"},
	{ModStatic, "static"},
	{ModSynchronized, "synchronized"},
	{ModTransient, "transient"},
	{ModVolatile, "volatile"},
}

// Has reports whether all bits of flag are set.
func (m Mods) Has(flag Mods) bool { return m&flag == flag }

// Words returns the set modifier keywords in their fixed rendering order.
func (m Mods) Words() []string {
	var words []string
	for _, mw := range modWords {
		if m.Has(mw.flag) {
			words = append(words, mw.word)
		}
	}
	return words
}
