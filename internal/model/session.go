package model

import "time"

// DeviceSession 数据库后端下每个设备一行，Payload 为完整的用户 JSON
type DeviceSession struct {
	DeviceKey string    `gorm:"primaryKey;size:191" json:"deviceKey"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (DeviceSession) TableName() string {
	return "device_sessions"
}
