package middleware

import (
	"ai_edu_navigator/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	deviceIDKey       = "deviceID"
	deviceIDIssuedKey = "deviceIDIssued"
)

// DeviceMiddleware 读取 X-Device-ID，缺省时分配新的设备 ID 并在响应头返回
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader(util.DeviceIDHeader)
		if deviceID == "" {
			deviceID = util.NewDeviceID()
			c.Set(deviceIDIssuedKey, true)
		} else if !util.ValidDeviceID(deviceID) {
			util.BadRequest(c, util.ErrInvalidDeviceID.Error())
			c.Abort()
			return
		}

		c.Set(deviceIDKey, deviceID)
		c.Header(util.DeviceIDHeader, deviceID)
		c.Next()
	}
}

func DeviceID(c *gin.Context) string {
	return c.GetString(deviceIDKey)
}

// deviceIDSupplied 客户端是否自带设备 ID
func deviceIDSupplied(c *gin.Context) bool {
	return DeviceID(c) != "" && !c.GetBool(deviceIDIssuedKey)
}
