package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv 加载 .env 文件，文件不存在时静默忽略
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[Env] 未找到 .env 文件，使用系统环境变量")
	}
}

// GetEnv 读取环境变量，为空时返回默认值
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt 读取整型环境变量，解析失败时返回默认值
func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[Env] %s 解析失败，使用默认值 %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return n
}

// GetEnvMillis 读取以毫秒为单位的环境变量，返回 time.Duration
func GetEnvMillis(key string, defaultMillis int) time.Duration {
	return time.Duration(GetEnvInt(key, defaultMillis)) * time.Millisecond
}
