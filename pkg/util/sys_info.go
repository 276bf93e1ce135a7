package util

import (
	"bufio"
	"os"
	"runtime"
	"strings"
)

// GetOSPrettyName returns a readable OS name, PRETTY_NAME from /etc/os-release on linux
// GetOSPrettyName 返回可读的操作系统名称，linux 下读取 /etc/os-release 的 PRETTY_NAME
func GetOSPrettyName() string {
	if runtime.GOOS != "linux" {
		return runtime.GOOS
	}
	file, err := os.Open("/etc/os-release")
	if err != nil {
		return "Linux"
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if name, ok := strings.CutPrefix(scanner.Text(), "PRETTY_NAME="); ok {
			return strings.Trim(name, `"`)
		}
	}
	return "Linux"
}
