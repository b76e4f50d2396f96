package convert

// namedColors covers common CSS color keywords.
var namedColors = map[string]string{
	"transparent": "#00000000",

	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"red":     "#ff0000",
	"maroon":  "#800000",
	"yellow":  "#ffff00",
	"olive":   "#808000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"teal":    "#008080",
	"blue":    "#0000ff",
	"navy":    "#000080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"purple":  "#800080",

	"orange":        "#ffa500",
	"brown":         "#a52a2a",
	"pink":          "#ffc0cb",
	"gold":          "#ffd700",
	"indigo":        "#4b0082",
	"violet":        "#ee82ee",
	"coral":         "#ff7f50",
	"salmon":        "#fa8072",
	"tomato":        "#ff6347",
	"crimson":       "#dc143c",
	"khaki":         "#f0e68c",
	"beige":         "#f5f5dc",
	"ivory":         "#fffff0",
	"lavender":      "#e6e6fa",
	"turquoise":     "#40e0d0",
	"tan":           "#d2b48c",
	"chocolate":     "#d2691e",
	"orchid":        "#da70d6",
	"plum":          "#dda0dd",
	"skyblue":       "#87ceeb",
	"steelblue":     "#4682b4",
	"royalblue":     "#4169e1",
	"slategray":     "#708090",
	"lightgray":     "#d3d3d3",
	"darkgray":      "#a9a9a9",
	"dimgray":       "#696969",
	"whitesmoke":    "#f5f5f5",
	"gainsboro":     "#dcdcdc",
	"rebeccapurple": "#663399",
}
