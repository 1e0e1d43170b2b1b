// @title Level Tracker API
// @version 1.0
// @description 关卡与副本目录的浏览与管理接口。

// @host localhost:8080
// @BasePath /api

package main

import (
	"fmt"
	"os"

	"level_tracker_backend/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
