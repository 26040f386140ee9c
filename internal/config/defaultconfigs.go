package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		ShowStackHeights:     true,
		Colors: ConfigColors{
			BoardColor:    180,
			BoardColorAlt: 137,
			WhiteColor:    255,
			BlackColor:    232,
			HeightColor:   94,
			CursorColorBG: 4,
			CarryColorBG:  2,
		},
		Symbols: ConfigSymbols{
			Flat:  '●',
			Wall:  '▲',
			Cap:   '◆',
			Empty: '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			DefaultBoardSize: 5,
			StartingColor:    "white",
		},
	}
}
