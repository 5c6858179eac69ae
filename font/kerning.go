// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package font

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/postscript/type1/names"
)

// parseKern converts kerning pairs in AFM "KPX" notation into a kerning
// table indexed by WinAnsi codes.  Pairs involving glyphs outside the
// WinAnsi character set are ignored.
func parseKern(kpx string) map[Pair]float64 {
	if kpx == "" {
		return nil
	}
	res := make(map[Pair]float64)
	for _, line := range strings.Split(kpx, "\n") {
		f := strings.Fields(line)
		if len(f) != 4 || f[0] != "KPX" {
			continue
		}
		left, ok1 := winAnsiCode(f[1])
		right, ok2 := winAnsiCode(f[2])
		val, err := strconv.ParseFloat(f[3], 64)
		if !ok1 || !ok2 || err != nil {
			continue
		}
		res[Pair{Left: left, Right: right}] = val
	}
	return res
}

func winAnsiCode(glyphName string) (byte, bool) {
	rr := []rune(names.ToUnicode(glyphName, ""))
	if len(rr) != 1 {
		return 0, false
	}
	code, ok := charmap.Windows1252.EncodeRune(rr[0])
	if !ok || !isWinAnsi(code) {
		return 0, false
	}
	return code, true
}

// Kerning pairs of the standard fonts, from the Adobe Core 14 AFM files.
// Courier has no kerning.

const helveticaKern = `
KPX A C -30
KPX A G -30
KPX A O -30
KPX A Q -30
KPX A T -120
KPX A U -50
KPX A V -70
KPX A W -50
KPX A Y -100
KPX A u -30
KPX A v -40
KPX A w -40
KPX A y -40
KPX B U -10
KPX B comma -20
KPX B period -20
KPX C comma -30
KPX C period -30
KPX D A -40
KPX D V -70
KPX D W -40
KPX D Y -90
KPX D comma -70
KPX D period -70
KPX F A -80
KPX F a -50
KPX F comma -150
KPX F e -30
KPX F o -30
KPX F period -150
KPX F r -45
KPX J A -20
KPX J a -20
KPX J comma -30
KPX J period -30
KPX J u -20
KPX K O -50
KPX K e -40
KPX K o -40
KPX K u -30
KPX K y -50
KPX L T -110
KPX L V -110
KPX L W -70
KPX L Y -140
KPX L quotedblright -140
KPX L quoteright -160
KPX L y -30
KPX O A -20
KPX O T -40
KPX O V -50
KPX O W -30
KPX O X -60
KPX O Y -70
KPX O comma -40
KPX O period -40
KPX P A -120
KPX P a -40
KPX P comma -180
KPX P e -50
KPX P o -50
KPX P period -180
KPX Q U -10
KPX R O -20
KPX R T -30
KPX R U -40
KPX R V -50
KPX R W -30
KPX R Y -50
KPX S comma -20
KPX S period -20
KPX T A -120
KPX T O -40
KPX T a -120
KPX T colon -20
KPX T comma -120
KPX T e -120
KPX T hyphen -140
KPX T o -120
KPX T period -120
KPX T r -120
KPX T semicolon -20
KPX T u -120
KPX T w -120
KPX T y -120
KPX U A -40
KPX U comma -40
KPX U period -40
KPX V A -80
KPX V G -40
KPX V O -40
KPX V a -70
KPX V colon -40
KPX V comma -125
KPX V e -80
KPX V hyphen -80
KPX V o -80
KPX V period -125
KPX V semicolon -40
KPX V u -70
KPX W A -50
KPX W O -20
KPX W a -40
KPX W comma -80
KPX W e -30
KPX W hyphen -40
KPX W o -30
KPX W period -80
KPX W u -30
KPX W y -20
KPX Y A -110
KPX Y O -85
KPX Y a -140
KPX Y colon -60
KPX Y comma -140
KPX Y e -140
KPX Y hyphen -140
KPX Y i -20
KPX Y o -140
KPX Y period -140
KPX Y semicolon -60
KPX Y u -110
KPX Y v -110
KPX a v -20
KPX a w -20
KPX a y -30
KPX b b -10
KPX b comma -40
KPX b l -20
KPX b period -40
KPX b u -20
KPX b v -20
KPX b y -20
KPX c comma -15
KPX c k -20
KPX colon space -50
KPX comma quotedblright -100
KPX comma quoteright -100
KPX e comma -15
KPX e period -15
KPX e v -30
KPX e w -20
KPX e x -30
KPX e y -20
KPX f a -30
KPX f comma -30
KPX f e -30
KPX f o -30
KPX f period -30
KPX f quotedblright 60
KPX f quoteright 50
KPX g r -10
KPX h y -30
KPX k e -20
KPX k o -20
KPX m u -10
KPX m y -15
KPX n u -10
KPX n v -20
KPX n y -15
KPX o comma -40
KPX o period -40
KPX o v -15
KPX o w -15
KPX o x -30
KPX o y -30
KPX p comma -35
KPX p period -35
KPX p y -30
KPX period quotedblright -100
KPX period quoteright -100
KPX period space -60
KPX quotedblright space -40
KPX quoteleft quoteleft -57
KPX quoteright d -50
KPX quoteright quoteright -57
KPX quoteright r -50
KPX quoteright s -50
KPX quoteright space -70
KPX r a -10
KPX r colon 30
KPX r comma -50
KPX r hyphen -20
KPX r period -50
KPX r semicolon 30
KPX s comma -15
KPX s period -15
KPX s w -30
KPX semicolon space -50
KPX space T -50
KPX space V -50
KPX space W -40
KPX space Y -90
KPX space quotedblleft -30
KPX space quoteleft -60
KPX v a -25
KPX v comma -80
KPX v e -25
KPX v o -25
KPX v period -80
KPX w a -15
KPX w comma -60
KPX w e -10
KPX w o -10
KPX w period -60
KPX x e -30
KPX y a -20
KPX y comma -100
KPX y e -20
KPX y o -20
KPX y period -100
KPX z e -15
KPX z o -15
`

const helveticaBoldKern = `
KPX A O -40
KPX A Q -40
KPX A T -90
KPX A U -50
KPX A V -80
KPX A W -60
KPX A Y -110
KPX A u -30
KPX A v -40
KPX A w -30
KPX A y -30
KPX D A -40
KPX D V -40
KPX D W -40
KPX D Y -70
KPX D comma -30
KPX D period -30
KPX F A -80
KPX F a -20
KPX F comma -100
KPX F period -100
KPX L T -90
KPX L V -110
KPX L W -80
KPX L Y -120
KPX L quoteright -140
KPX L y -30
KPX O A -50
KPX O T -40
KPX O V -50
KPX O W -50
KPX O X -50
KPX O Y -70
KPX P A -100
KPX P a -30
KPX P comma -120
KPX P e -30
KPX P o -40
KPX P period -120
KPX R O -20
KPX R T -20
KPX R U -20
KPX R V -50
KPX R W -40
KPX R Y -50
KPX T A -90
KPX T O -40
KPX T a -80
KPX T colon -40
KPX T comma -80
KPX T e -60
KPX T hyphen -120
KPX T o -80
KPX T period -80
KPX T r -80
KPX T semicolon -40
KPX T u -90
KPX T w -60
KPX T y -60
KPX V A -80
KPX V G -50
KPX V O -50
KPX V a -60
KPX V colon -40
KPX V comma -120
KPX V e -50
KPX V hyphen -80
KPX V o -90
KPX V period -120
KPX V semicolon -40
KPX V u -60
KPX W A -60
KPX W O -20
KPX W a -40
KPX W comma -80
KPX W e -35
KPX W hyphen -40
KPX W o -60
KPX W period -80
KPX W u -45
KPX W y -20
KPX Y A -110
KPX Y O -70
KPX Y a -90
KPX Y colon -50
KPX Y comma -100
KPX Y e -80
KPX Y o -100
KPX Y period -100
KPX Y semicolon -50
KPX Y u -100
`

const timesRomanKern = `
KPX A C -40
KPX A G -40
KPX A O -55
KPX A Q -55
KPX A T -111
KPX A U -55
KPX A V -135
KPX A W -90
KPX A Y -105
KPX A quoteright -111
KPX A v -74
KPX A w -92
KPX A y -92
KPX B A -35
KPX B U -10
KPX D A -40
KPX D V -40
KPX D W -30
KPX D Y -55
KPX F A -74
KPX F a -15
KPX F comma -80
KPX F o -15
KPX F period -80
KPX J A -60
KPX K O -30
KPX K e -25
KPX K o -35
KPX K u -15
KPX K y -25
KPX L T -92
KPX L V -100
KPX L W -74
KPX L Y -100
KPX L quoteright -92
KPX L y -55
KPX N A -35
KPX O A -35
KPX O T -40
KPX O V -50
KPX O W -35
KPX O X -40
KPX O Y -50
KPX P A -92
KPX P a -15
KPX P comma -111
KPX P period -111
KPX Q U -10
KPX R O -40
KPX R T -60
KPX R U -40
KPX R V -80
KPX R W -55
KPX R Y -65
KPX T A -93
KPX T O -18
KPX T a -80
KPX T colon -50
KPX T comma -74
KPX T e -70
KPX T hyphen -92
KPX T i -35
KPX T o -80
KPX T period -74
KPX T r -35
KPX T semicolon -55
KPX T u -45
KPX T w -80
KPX T y -80
KPX U A -40
KPX V A -135
KPX V G -15
KPX V O -40
KPX V a -111
KPX V colon -74
KPX V comma -129
KPX V e -111
KPX V hyphen -100
KPX V i -60
KPX V o -129
KPX V period -129
KPX V semicolon -74
KPX V u -75
KPX W A -120
KPX W O -10
KPX W a -80
KPX W colon -37
KPX W comma -92
KPX W e -80
KPX W hyphen -65
KPX W i -40
KPX W o -80
KPX W period -92
KPX W semicolon -37
KPX W u -50
KPX W y -73
KPX Y A -120
KPX Y O -30
KPX Y a -100
KPX Y colon -92
KPX Y comma -129
KPX Y e -100
KPX Y hyphen -111
KPX Y i -55
KPX Y o -110
KPX Y period -129
KPX Y semicolon -92
KPX Y u -111
KPX a v -20
KPX a w -15
KPX b period -40
KPX b u -20
KPX b v -15
KPX c y -15
KPX comma quotedblright -70
KPX comma quoteright -70
KPX e g -15
KPX e v -25
KPX e w -25
KPX e x -15
KPX e y -15
KPX f a -10
KPX f f -25
KPX f i -20
KPX f quoteright 55
KPX g a -5
KPX h y -5
KPX i v -25
KPX k e -10
KPX k o -10
KPX k y -15
KPX l w -10
KPX n v -40
KPX n y -15
KPX o v -15
KPX o w -25
KPX o y -10
KPX p y -10
KPX period quotedblright -70
KPX period quoteright -70
KPX quotedblleft A -80
KPX quoteleft A -80
KPX quoteleft quoteleft -74
KPX quoteright d -50
KPX quoteright l -10
KPX quoteright quoteright -74
KPX quoteright r -50
KPX quoteright s -55
KPX quoteright space -74
KPX quoteright t -18
KPX quoteright v -50
KPX r comma -40
KPX r g -18
KPX r hyphen -20
KPX r period -55
KPX space A -55
KPX space T -18
KPX space V -50
KPX space W -30
KPX space Y -90
KPX v a -25
KPX v comma -65
KPX v e -15
KPX v o -20
KPX v period -65
KPX w a -10
KPX w comma -65
KPX w o -10
KPX w period -65
KPX x e -15
KPX y comma -65
KPX y period -65
`

const timesBoldKern = `
KPX A C -55
KPX A O -45
KPX A T -95
KPX A V -145
KPX A W -130
KPX A Y -100
KPX A v -100
KPX A w -90
KPX A y -74
KPX F A -90
KPX F comma -92
KPX F period -110
KPX L T -92
KPX L V -92
KPX L W -92
KPX L Y -92
KPX P A -74
KPX P comma -92
KPX P period -110
KPX T A -90
KPX T a -92
KPX T comma -74
KPX T e -92
KPX T o -92
KPX T period -90
KPX V A -135
KPX V a -92
KPX V comma -129
KPX V e -100
KPX V o -100
KPX V period -145
KPX W A -120
KPX W a -65
KPX W e -65
KPX W o -75
KPX Y A -110
KPX Y a -85
KPX Y e -111
KPX Y o -111
`

const timesItalicKern = `
KPX A T -37
KPX A V -105
KPX A W -95
KPX A Y -55
KPX F A -115
KPX L T -20
KPX L V -55
KPX L W -55
KPX L Y -20
KPX P A -90
KPX T A -50
KPX T a -92
KPX T e -92
KPX T o -92
KPX V A -60
KPX V a -111
KPX V e -111
KPX V o -111
KPX W A -60
KPX W a -92
KPX W e -92
KPX Y A -50
KPX Y a -92
KPX Y e -92
`

const timesBoldItalicKern = `
KPX A T -55
KPX A V -74
KPX A W -74
KPX A Y -70
KPX F A -118
KPX L T -18
KPX L V -37
KPX L W -37
KPX L Y -37
KPX P A -82
KPX T A -55
KPX T a -92
KPX T e -74
KPX T o -92
KPX V A -85
KPX V a -111
KPX V e -111
KPX V o -111
KPX W A -74
KPX W a -85
KPX W e -90
KPX Y A -74
KPX Y a -92
KPX Y e -111
`
