package radixblitz

import (
	"fmt"
	"image/color"
	"io/ioutil"
	"math"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/golang/freetype/truetype"
	"github.com/nathanKramer/radix-blitz/sliceextra"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const lcdScale = 3.0
const lcdCharW = 7.0 * lcdScale
const lcdLineH = 13.0 * lcdScale
const lcdMargin = 24.0

type DrawContext struct {
	imd *imdraw.IMDraw

	titleFont *text.Atlas
	lcdFont   *text.Atlas

	titleTxt    *text.Text
	centeredTxt *text.Text
	lcdTxt      *text.Text
	scoreTxt    *text.Text
	footerTxt   *text.Text
	consoleTxt  *text.Text
}

var basicFont *text.Atlas
var smallFont *text.Atlas

func loadFace(path string, size float64) (font.Face, error) {
	ttfData, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(ttfData)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size: size,
		DPI:  96,
	}), nil
}

func NewDrawContext(cfg pixelgl.WindowConfig) *DrawContext {
	drawContext := new(DrawContext)

	drawContext.imd = imdraw.New(nil)

	// Fonts and text. Missing font files aren't fatal: everything can
	// fall back to the stdlib bitmap face.
	var titleFace font.Face = basicfont.Face7x13
	var normalFace font.Face = basicfont.Face7x13
	var smallFace font.Face = basicfont.Face7x13

	if face, err := loadFace("./font/gabriel_serif/Gabriel Serif.ttf", 28.0); err == nil {
		titleFace = face
	} else {
		fmt.Printf("[draw] title font unavailable, using fallback: %v\n", err)
	}
	if face, err := loadFace("./font/comfortaa/Comfortaa-Regular.ttf", 18.0); err == nil {
		normalFace = face
	}
	if face, err := loadFace("./font/comfortaa/Comfortaa-Regular.ttf", 14.0); err == nil {
		smallFace = face
	}

	drawContext.titleFont = text.NewAtlas(titleFace, text.ASCII)
	basicFont = text.NewAtlas(normalFace, text.ASCII)
	smallFont = text.NewAtlas(smallFace, text.ASCII)

	// The LCD always renders with the fixed-width bitmap face so the
	// sixteen columns line up like character cells.
	drawContext.lcdFont = text.NewAtlas(basicfont.Face7x13, text.ASCII)

	drawContext.titleTxt = text.New(pixel.V(0, 160), drawContext.titleFont)
	drawContext.centeredTxt = text.New(pixel.V(-96, 64), basicFont)
	drawContext.centeredTxt.LineHeight = basicFont.LineHeight() * 1.5
	drawContext.lcdTxt = text.New(pixel.ZV, drawContext.lcdFont)
	drawContext.scoreTxt = text.New(pixel.V(-72, 120), basicFont)
	drawContext.scoreTxt.LineHeight = basicFont.LineHeight() * 1.5
	drawContext.footerTxt = text.New(pixel.ZV, smallFont)
	drawContext.consoleTxt = text.New(pixel.ZV, smallFont)

	return drawContext
}

func DrawGame(win *pixelgl.Window, game *game, d *DrawContext) {
	win.Clear(colornames.Black)
	win.SetMatrix(pixel.IM.Moved(win.Bounds().Center()))

	d.imd.Clear()
	d.imd.Color = colornames.Orange

	switch game.state {
	case "main_menu", "options":
		drawTitle(win, d)

		d.centeredTxt.Clear()
		d.centeredTxt.Dot = d.centeredTxt.Orig
		drawMenu(d, &game.menu)
		d.centeredTxt.Draw(win, pixel.IM.Scaled(d.centeredTxt.Orig, 1))

	case "playing", "feedback", "game_over", "new_highscore":
		drawLCD(win, game, d)
		drawFooter(win, game, d)

	case "high_scores":
		drawScores(win, game, d)
	}

	if g_debug {
		drawDebug(win, game, d)
	}

	d.imd.Draw(win)
}

func drawTitle(win *pixelgl.Window, d *DrawContext) {
	d.titleTxt.Clear()
	d.titleTxt.Dot.X -= d.titleTxt.BoundsOf(gameTitle).W() / 2
	fmt.Fprintln(d.titleTxt, gameTitle)
	d.titleTxt.Draw(
		win,
		pixel.IM.Scaled(
			d.titleTxt.Orig,
			2,
		),
	)

	d.imd.Push(
		d.titleTxt.Orig.Add(pixel.V(-128, -18.0)),
		d.titleTxt.Orig.Add(pixel.V(128, -18.0)),
	)
	d.imd.Line(1.0)
}

func drawMenu(d *DrawContext, menu *menu) {
	for _, item := range menu.options {
		if sliceextra.Contains(implementedMenuItems, item) {
			d.centeredTxt.Color = colornames.White
		} else {
			d.centeredTxt.Color = colornames.Grey
		}
		if item == menu.options[menu.selection] {
			d.centeredTxt.Color = colornames.Deepskyblue
			d.imd.Push(
				d.centeredTxt.Dot.Add(
					pixel.V(
						-8.0,
						(d.centeredTxt.LineHeight/2.0)-10,
					),
				),
			)
			d.imd.Circle(2.0, 4.0)
		}
		fmt.Fprintln(d.centeredTxt, item)
	}
}

func drawLCD(win *pixelgl.Window, game *game, d *DrawContext) {
	w := lcdCols*lcdCharW + lcdMargin*2
	h := lcdRows*lcdLineH + lcdMargin*2

	var backlight color.Color = lcdBacklight
	if game.state == "new_highscore" {
		// celebratory backlight sweep
		backlight = HSVToColor(math.Mod(game.totalTime*3.0, 6.0), 0.45, 0.85)
	}

	// the panel has to hit the canvas before its text does
	d.imd.Color = lcdBezel
	d.imd.Push(pixel.V(-w/2-12, -h/2-12), pixel.V(w/2+12, h/2+12))
	d.imd.Rectangle(0)

	d.imd.Color = backlight
	d.imd.Push(pixel.V(-w/2, -h/2), pixel.V(w/2, h/2))
	d.imd.Rectangle(0)

	d.imd.Draw(win)
	d.imd.Clear()
	d.imd.Color = colornames.Orange

	line1, line2 := game.screen.Lines()
	d.lcdTxt.Clear()
	d.lcdTxt.Color = lcdInk
	fmt.Fprintln(d.lcdTxt, line1)
	fmt.Fprintln(d.lcdTxt, line2)
	d.lcdTxt.Draw(
		win,
		pixel.IM.Scaled(d.lcdTxt.Orig, lcdScale).Moved(
			pixel.V(-w/2+lcdMargin, h/2-lcdMargin-lcdLineH/2),
		),
	)
}

func drawFooter(win *pixelgl.Window, game *game, d *DrawContext) {
	d.footerTxt.Clear()
	d.footerTxt.Orig = pixel.V(0, -200)
	d.footerTxt.Dot = d.footerTxt.Orig
	d.footerTxt.Color = colornames.Grey

	if game.session != nil && (game.state == "playing" || game.state == "feedback") {
		asked := game.session.Asked()
		if asked < questionsPerSession {
			asked++
		}
		txt := fmt.Sprintf("Question %d/%d   Score %d", asked, questionsPerSession, game.session.Score())
		d.footerTxt.Dot.X -= d.footerTxt.BoundsOf(txt).W() / 2
		fmt.Fprintln(d.footerTxt, txt)
	}

	hint := "0-9 A-D type    # delete    * submit"
	d.footerTxt.Dot.X = d.footerTxt.Orig.X - d.footerTxt.BoundsOf(hint).W()/2
	fmt.Fprintln(d.footerTxt, hint)

	d.footerTxt.Draw(win, pixel.IM.Scaled(d.footerTxt.Orig, 1))
}

func drawScores(win *pixelgl.Window, game *game, d *DrawContext) {
	d.scoreTxt.Clear()
	d.scoreTxt.Dot = d.scoreTxt.Orig
	d.scoreTxt.Color = colornames.White

	fmt.Fprintln(d.scoreTxt, "High Scores")
	fmt.Fprintln(d.scoreTxt, "")
	for i, score := range game.localData.RankedScores() {
		fmt.Fprintf(d.scoreTxt, "%d.  %d\n", i+1, score)
	}
	fmt.Fprintln(d.scoreTxt, "")
	d.scoreTxt.Color = colornames.Deepskyblue
	fmt.Fprintf(d.scoreTxt, "Best ever: %d\n", game.localData.BestEver)

	d.scoreTxt.Draw(win, pixel.IM.Scaled(d.scoreTxt.Orig, 1.5))
}

func drawDebug(win *pixelgl.Window, game *game, d *DrawContext) {
	d.consoleTxt.Clear()
	d.consoleTxt.Orig = pixel.V(-win.Bounds().W()/2+50, win.Bounds().H()/2-50)
	d.consoleTxt.Dot = d.consoleTxt.Orig
	d.consoleTxt.Color = colornames.Whitesmoke

	fmt.Fprintln(d.consoleTxt, "Debugging: On")

	txt := "State: %s\n"
	fmt.Fprintf(d.consoleTxt, txt, game.state)

	txt = "Board: %v\n"
	fmt.Fprintf(d.consoleTxt, txt, game.localData.RankedScores())

	if game.session != nil {
		txt = "Session: %d/%d score %d\n"
		fmt.Fprintf(d.consoleTxt, txt, game.session.Asked(), questionsPerSession, game.session.Score())
	}

	d.consoleTxt.Draw(win, pixel.IM.Scaled(d.consoleTxt.Orig, 1))
}
