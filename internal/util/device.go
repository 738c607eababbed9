package util

import (
	"regexp"

	"github.com/google/uuid"
)

var (
	iosPattern     = regexp.MustCompile(`(?i)iPhone|iPad|iPod`)
	androidPattern = regexp.MustCompile(`(?i)Android`)
	mobilePattern  = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)
)

func IsMobile(userAgent string) bool {
	return mobilePattern.MatchString(userAgent)
}

func DetectPlatform(userAgent string) string {
	switch {
	case iosPattern.MatchString(userAgent):
		return PlatformIOS
	case androidPattern.MatchString(userAgent):
		return PlatformAndroid
	default:
		return PlatformWeb
	}
}

func NewDeviceID() string {
	return uuid.New().String()
}

// ValidDeviceID 设备 ID 必须是 UUID，防止拼接存储键时注入路径
func ValidDeviceID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
