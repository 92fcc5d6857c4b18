package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		Colors: ConfigColors{
			BoardColor:        22,
			BoardColorAlt:     28,
			BlackColor:        232,
			WhiteColor:        255,
			LayerLabelColor:   109,
			HintColor:         178,
			CursorColorBG:     4,
			LastPlayedColorBG: 2,
		},
		Symbols: ConfigSymbols{
			BlackStone: '●',
			WhiteStone: '○',
			EmptyCell:  '·',
			HintMark:   '▫',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			DefaultBoardSize: 8,
			ShowHints:        true,
		},
	}
}
