package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"

	"github.com/palemoky/doudizhu-tally/internal/config"
	"github.com/palemoky/doudizhu-tally/internal/journal"
	"github.com/palemoky/doudizhu-tally/internal/logger"
	"github.com/palemoky/doudizhu-tally/internal/sound"
	"github.com/palemoky/doudizhu-tally/internal/ui"
	"github.com/palemoky/doudizhu-tally/internal/ui/model"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	variant := flag.String("variant", "", "牌桌类型 (classic 或 compact)，覆盖配置文件")
	printConfig := flag.Bool("print-config", false, "打印生效的配置后退出")
	flag.Parse()

	if err := logger.Init(); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.LogError("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}
	if *variant != "" {
		cfg.Board.Variant = *variant
	}

	boardCfg, err := cfg.TallyConfig()
	if err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	if *printConfig {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("输出配置失败: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	var player model.SoundPlayer
	if !cfg.Sound.Muted {
		sm := sound.NewSoundManager(cfg.Sound.Dir)
		if err := sm.Init(); err != nil {
			// 音效不可用时静默运行
			logger.LogError("初始化音效失败: %v", err)
		} else {
			player = sm
			defer sm.Close()
		}
	}

	var rec journal.Recorder = journal.Nop{}
	if r, err := journal.Open(cfg.Journal); err != nil {
		logger.LogError("打开操作记录失败: %v", err)
	} else {
		rec = r
	}
	defer func() {
		if err := rec.Close(); err != nil {
			logger.LogError("关闭操作记录失败: %v", err)
		}
	}()

	logger.LogInfo("启动记牌器 variant=%s window=%s", cfg.Board.Variant, cfg.Input.DoubleTapWindow())

	m := ui.NewModel(boardCfg, cfg.Input.DoubleTapWindow(), player, rec)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "启动记牌器时出错: %v\n", err)
		os.Exit(1)
	}
}
