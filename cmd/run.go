package cmd

import (
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	internalApp "github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/fileurl"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/util"

	"github.com/radovskyb/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// authTokenPlaceholder secret key shipped in the embedded config, replaced on first run
// authTokenPlaceholder 内嵌配置中的占位密钥，首次运行时替换
const authTokenPlaceholder = "pim-auth-token-key"

// configCandidates lookup order when -c is not given
var configCandidates = []string{"config/config-dev.yaml", "config.yaml", "config/config.yaml"}

type runFlags struct {
	dir     string // Project root directory // 项目根目录
	port    string // Startup port // 启动端口
	runMode string // Startup mode // 启动模式
	config  string // Specified configuration file path // 指定要使用的配置文件路径
}

// resolveConfig returns the config file to load, writing the embedded default when none exists
// resolveConfig 返回要加载的配置文件，不存在时写入内嵌默认配置
func resolveConfig(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	for _, candidate := range configCandidates {
		if fileurl.IsExist(candidate) {
			return candidate, nil
		}
	}

	path = configCandidates[len(configCandidates)-1]
	content := strings.Replace(configDefault, authTokenPlaceholder, util.GetRandomString(32), 1)
	wrote, err := fileurl.WriteFileIfMissing(path, []byte(content), 0644)
	if err != nil {
		return "", err
	}
	if wrote {
		bootstrapLogger.Info("config file auto create successfully", zap.String("path", path))
	}
	return path, nil
}

// serverHolder the running server, replaced on config reload
type serverHolder struct {
	mu sync.Mutex
	s  *Server
}

func (h *serverHolder) get() *Server {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.s
}

// reload stops the running server and starts a new one from the current config
// reload 停止当前服务并按当前配置重新启动
func (h *serverHolder) reload(runEnv *runFlags) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// 新配置无效时保持当前服务运行
	if _, _, err := internalApp.LoadConfig(runEnv.config); err != nil {
		bootstrapLogger.Error("config reload rejected", zap.Error(err))
		return
	}

	if err := h.s.Stop(); err != nil {
		bootstrapLogger.Error("service stop err", zap.Error(err))
	}
	s, err := NewServer(runEnv)
	if err != nil {
		bootstrapLogger.Error("service restart err", zap.Error(err))
		return
	}
	h.s = s
}

// watchConfig reloads the server whenever the config file is written
// watchConfig 配置文件被写入时重新加载服务
func watchConfig(holder *serverHolder, runEnv *runFlags) {
	w := watcher.New()

	// 每个监听周期至多接收 1 个事件
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Write)

	go func() {
		for {
			select {
			case event := <-w.Event:
				bootstrapLogger.Info("config watcher change", zap.String("event", event.Op.String()), zap.String("file", event.Path))
				holder.reload(runEnv)
			case err := <-w.Error:
				bootstrapLogger.Error("config watcher error", zap.Error(err))
			case <-w.Closed:
				bootstrapLogger.Info("config watcher closed")
				return
			}
		}
	}()

	if err := w.Add(runEnv.config); err != nil {
		bootstrapLogger.Error("config watcher file error", zap.Error(err))
		return
	}
	if err := w.Start(5 * time.Second); err != nil {
		bootstrapLogger.Error("config watcher start error", zap.Error(err))
	}
}

func init() {
	runEnv := new(runFlags)

	var runCommand = &cobra.Command{
		Use:   "run [-c config_file] [-d working_dir] [-p port]",
		Short: "Run service",
		Run: func(cmd *cobra.Command, args []string) {
			if len(runEnv.dir) > 0 {
				if err := os.Chdir(runEnv.dir); err != nil {
					bootstrapLogger.Error("failed to change the current working directory", zap.Error(err))
					return
				}
				bootstrapLogger.Info("working directory changed", zap.String("dir", runEnv.dir))
			}

			configPath, err := resolveConfig(runEnv.config)
			if err != nil {
				bootstrapLogger.Error("config file auto create error", zap.Error(err))
				return
			}
			runEnv.config = configPath

			s, err := NewServer(runEnv)
			if err != nil {
				bootstrapLogger.Error("api service start err", zap.Error(err))
				return
			}
			holder := &serverHolder{s: s}

			go watchConfig(holder, runEnv)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			s = holder.get()
			s.logger.Info("Received shutdown signal, initiating graceful shutdown...")
			if err := s.Stop(); err != nil {
				s.logger.Error("Shutdown completed with error", zap.Error(err))
			} else {
				s.logger.Info("Service has been shut down gracefully.")
			}
		},
	}

	rootCmd.AddCommand(runCommand)
	fs := runCommand.Flags()
	fs.StringVarP(&runEnv.dir, "dir", "d", "", "run dir")
	fs.StringVarP(&runEnv.port, "port", "p", "", "run port")
	fs.StringVarP(&runEnv.runMode, "mode", "m", "", "run mode")
	fs.StringVarP(&runEnv.config, "config", "c", "", "config file")
}
