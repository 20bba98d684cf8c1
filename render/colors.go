package render

// Palette
var (
	RgbBlack      = RGB{0, 0, 0}
	RgbBackground = RGB{10, 10, 20}
	RgbBorder     = RGB{70, 80, 120}

	RgbShip        = RGB{230, 235, 255}
	RgbThrust      = RGB{255, 160, 40}
	RgbPlayerLaser = RGB{120, 255, 120}
	RgbEnemy       = RGB{255, 100, 220}
	RgbEnemyLaser  = RGB{255, 70, 70}
	RgbAsteroid    = RGB{175, 150, 125}
	RgbAsteroidDim = RGB{110, 95, 80}
	RgbStar        = RGB{190, 200, 255}

	RgbTitle  = RGB{255, 210, 60}
	RgbPrompt = RGB{255, 255, 255}
	RgbInfo   = RGB{140, 150, 185}
	RgbHUD    = RGB{220, 220, 230}
	RgbNotice = RGB{255, 90, 90}
)

// ExplosionPalette is the gradient of one explosion kind, hottest first
type ExplosionPalette struct {
	Core, Mid, Edge RGB
}

// Explosion palettes indexed by core.ExplosionKind
var ExplosionPalettes = [4]ExplosionPalette{
	{Core: RGB{255, 240, 200}, Mid: RGB{230, 170, 90}, Edge: RGB{120, 80, 50}},  // Laser on asteroid
	{Core: RGB{255, 255, 255}, Mid: RGB{120, 200, 255}, Edge: RGB{40, 70, 160}}, // Ship contact
	{Core: RGB{255, 255, 220}, Mid: RGB{255, 140, 40}, Edge: RGB{170, 30, 20}},  // Ship dead
	{Core: RGB{255, 220, 255}, Mid: RGB{230, 90, 210}, Edge: RGB{100, 30, 110}}, // Enemy
}
