package breakout

import (
	"fmt"

	"github.com/vovakirdan/block-arcade/internal/config"
	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar  = '▀'
	BallChar    = '●'
	BrickChar   = '█'
	BorderVert  = '│'
	BorderHoriz = '─'
	BorderTL    = '┌'
	BorderTR    = '┐'
)

// Brick colors by row, top to bottom.
var brickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorSky,
}

// Game states
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Every brick cleared
)

// serveDelayTicks is the pause after losing a ball before serving again.
const serveDelayTicks = 60

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the Breakout game logic.
type Game struct {
	paddle *Paddle
	ball   *Ball
	wall   *Wall
	field  Field

	state      string
	prevState  string // State to resume after pause
	score      int
	lives      int
	tickCount  int
	serveDelay int

	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Clear the wall of bricks without dropping the ball"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Row 0 is the HUD, row 1 the top wall; columns 0 and W-1 are side walls
	g.field = Field{
		Left:   1,
		Right:  runtime.ScreenW - 2,
		Top:    2,
		Bottom: runtime.ScreenH,
	}
	g.wall = NewWall(cfg.Bricks.Rows, cfg.Bricks.Cols, cfg.Bricks.Points, g.field, 3)

	g.paddle = &Paddle{
		X:     ToFixed((runtime.ScreenW - cfg.Paddle.Width) / 2),
		Y:     runtime.ScreenH - 2,
		Width: cfg.Paddle.Width,
	}
	g.ball = &Ball{}
	g.placeBallOnPaddle()

	g.state = StateServe
	g.prevState = StateServe
	g.score = 0
	g.lives = max(1, cfg.Gameplay.Lives)
	g.tickCount = 0
	g.serveDelay = 0
}

// placeBallOnPaddle parks the ball just above the paddle center.
func (g *Game) placeBallOnPaddle() {
	g.ball.X = g.paddle.CenterX()
	g.ball.Y = ToFixed(g.paddle.Y - 1)
	g.ball.VX = 0
	g.ball.VY = 0
}

// ballSpeed returns the current vertical ball speed.
func (g *Game) ballSpeed() Fixed {
	speed := g.difficulty.Speed(float64(g.cfg.Physics.BallSpeed), g.score, g.tickCount)
	return Fixed(min(int(speed), g.cfg.Physics.MaxBallSpeed))
}

// launch sends the ball up and to the right, as the classic serve does.
func (g *Game) launch() {
	speed := g.ballSpeed()
	g.ball.VX = speed / 2
	g.ball.VY = -speed
	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.prevState
		case StatePlaying, StateServe:
			g.prevState = g.state
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Handle serve delay countdown
	if g.serveDelay > 0 {
		g.serveDelay--
		return core.StepResult{State: g.State()}
	}

	g.updatePaddle(in)

	if g.state == StateServe {
		g.placeBallOnPaddle()
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) || in.Has(core.ActionUp) {
			g.launch()
		}
		return core.StepResult{State: g.State()}
	}

	events := g.updateBall()
	return core.StepResult{State: g.State(), Events: events}
}

// updatePaddle handles paddle movement.
func (g *Game) updatePaddle(in core.InputFrame) {
	speed := Fixed(g.cfg.Physics.PaddleSpeed)

	if in.Has(core.ActionLeft) {
		g.paddle.X -= speed
	}
	if in.Has(core.ActionRight) {
		g.paddle.X += speed
	}

	minX := ToFixed(g.field.Left)
	maxX := ToFixed(g.field.Right + 1 - g.paddle.Width)
	g.paddle.X = core.Clamp(g.paddle.X, minX, maxX)
}

// updateBall moves the ball and resolves collisions in order: walls,
// paddle, bricks.
func (g *Game) updateBall() []core.Event {
	var events []core.Event

	g.ball.Move()

	bounced, fellOff := BounceWalls(g.ball, g.field)
	if fellOff {
		if g.handleMiss() {
			events = append(events, core.EventGameOver)
		}
		return events
	}
	if bounced {
		events = append(events, core.EventBounce)
	}

	if BouncePaddle(g.ball, g.paddle, g.ballSpeed()) {
		return append(events, core.EventBounce)
	}

	if points, hit := g.wall.Hit(g.ball); hit {
		g.ball.VY = -g.ball.VY
		g.score += points
		events = append(events, core.EventBrickHit)

		if g.wall.Remaining() == 0 {
			g.state = StateWin
			events = append(events, core.EventWin)
		}
	}
	return events
}

// handleMiss costs a life and either ends the game or re-serves.
// Returns true when that was the last life.
func (g *Game) handleMiss() bool {
	g.lives--
	if g.lives <= 0 {
		g.state = StateGameOver
		return true
	}

	g.placeBallOnPaddle()
	g.state = StateServe
	g.serveDelay = serveDelayTicks
	return false
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderWalls(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and bricks left.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightYellow)
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	bricks := fmt.Sprintf("Bricks: %d/%d", g.wall.Remaining(), g.wall.Total())
	dst.DrawText(dst.Width()-len(bricks)-1, 0, bricks)
}

// renderWalls draws the ceiling and side walls. The bottom stays open.
func (g *Game) renderWalls(dst *core.Screen) {
	w := dst.Width()
	for x := 1; x < w-1; x++ {
		dst.SetColor(x, 1, BorderHoriz, core.ColorGray)
	}
	dst.SetColor(0, 1, BorderTL, core.ColorGray)
	dst.SetColor(w-1, 1, BorderTR, core.ColorGray)
	for y := 2; y < dst.Height(); y++ {
		dst.SetColor(0, y, BorderVert, core.ColorGray)
		dst.SetColor(w-1, y, BorderVert, core.ColorGray)
	}
}

// renderBricks draws all standing bricks.
func (g *Game) renderBricks(dst *core.Screen) {
	for row := range g.wall.Rows {
		color := brickColors[row%len(brickColors)]
		for col := range g.wall.Cols {
			if g.wall.Alive[row][col] {
				dst.DrawRectColor(g.wall.Rect(row, col), BrickChar, color)
			}
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	x := g.paddle.CellX()
	for i := range g.paddle.Width {
		dst.SetColor(x+i, g.paddle.Y, PaddleChar, core.ColorBrightBlue)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	dst.SetColor(g.ball.CellX(), g.ball.CellY(), BallChar, core.ColorPink)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.serveDelay > 0 {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to start")
		}

	case StatePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorBrightYellow)

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		dst.DrawMessageBox("GAME OVER", subtitle, core.ColorBrightRed)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		dst.DrawMessageBox("CLEAR!", subtitle, core.ColorBrightGreen)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
