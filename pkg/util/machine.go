package util

import (
	"sync"

	"github.com/denisbrodbeck/machineid"
)

const machineAppID = "pim-service"

var (
	machineIDOnce sync.Once
	machineID     string
)

// GetMachineID returns an app specific hash of the host machine id, empty when unavailable
// GetMachineID 返回与应用绑定的主机标识哈希，无法获取时返回空字符串
func GetMachineID() string {
	machineIDOnce.Do(func() {
		if id, err := machineid.ProtectedID(machineAppID); err == nil {
			machineID = id
		}
	})
	return machineID
}
