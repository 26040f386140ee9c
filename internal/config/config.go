package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var cfgFile = "taklite/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor    int `json:"board"`
	BoardColorAlt int `json:"board_alt"`
	WhiteColor    int `json:"white"`
	BlackColor    int `json:"black"`
	HeightColor   int `json:"height"`
	CursorColorBG int `json:"cursor_bg"`
	CarryColorBG  int `json:"carry_bg"`
}

type ConfigSymbols struct {
	Flat  rune `json:"flat"`
	Wall  rune `json:"wall"`
	Cap   rune `json:"cap"`
	Empty rune `json:"empty"`
}

type Theme struct {
	DrawCursorBackground bool          `json:"draw_cursor_bg"`
	ShowStackHeights     bool          `json:"show_stack_heights"`
	Colors               ConfigColors  `json:"colors"`
	Symbols              ConfigSymbols `json:"symbols"`
}

// GameConfig holds the defaults used when no flags override them.
type GameConfig struct {
	DefaultBoardSize int    `json:"default_board_size"`
	StartingColor    string `json:"starting_color"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Flat, c.Theme.Symbols.Wall, c.Theme.Symbols.Cap, c.Theme.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if s := c.Game.DefaultBoardSize; s < 3 || s > 8 {
		return &InvalidConfig{fmt.Sprintf("board size %d is not between 3 and 8", s)}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
