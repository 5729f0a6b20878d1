package edwards

import (
	"encoding/hex"

	"github.com/noot/go-edkeygen/internal/field"
)

var (
	// d is the curve constant -121665/121666.
	d = mustElement("a3785913ca4deb75abd841414d0a700098e879777940c78c73fe6f2bee6c0352")
	// d2 is 2*d, used by the addition formula.
	d2 = mustElement("59f1b226949bd6eb56b183829a14e00030d1f3eef2808e19e7fcdf56dcd90624")

	feOne = new(field.Element).One()
)

// The canonical generator B, with y = 4/5 and x positive.
var (
	generatorX = mustElement("1ad5258f602d56c9b2a7259560c72c695cdcd6fd31e2a4c0fe536ecdd3366921")
	generatorY = mustElement("5866666666666666666666666666666666666666666666666666666666666666")

	generator = &Point{
		x: *generatorX,
		y: *generatorY,
		z: *feOne,
		t: *new(field.Element).Multiply(generatorX, generatorY),
	}

	// baseTable holds 0*B through 15*B for ScalarBaseMult.
	baseTable = newLookupTable(generator)
)

func mustElement(s string) *field.Element {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	v, err := new(field.Element).SetBytes(b)
	if err != nil {
		panic(err)
	}
	return v
}
