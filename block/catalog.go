package block

// defaultShapes is the canonical piece set: all 21 free polyominoes of
// sizes 1 through 5, in catalog order. Strategy tie-breaking depends on
// this order staying fixed.
var defaultShapes = []string{
	// 1
	"#",
	// 2
	"##",
	// 3
	"###",
	"#_\n##",
	// 4
	"####",
	"#__\n###",
	"_#_\n###",
	"##\n##",
	"##_\n_##",
	// 5
	"#####",
	"#___\n####",
	"##__\n_###",
	"##_\n###",
	"#_#\n###",
	"__#_\n####",
	"#__\n###\n#__",
	"#__\n#__\n###",
	"#__\n##_\n_##",
	"#__\n###\n__#",
	"#__\n###\n_#_",
	"_#_\n###\n_#_",
}

// DefaultSet returns a fresh copy of the standard 21-block catalog. The
// shapes are fixed and known-good, so construction never fails.
func DefaultSet() []Block {
	set := make([]Block, len(defaultShapes))
	for i, s := range defaultShapes {
		set[i] = mustParse(s)
	}
	return set
}
