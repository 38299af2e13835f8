package simulation

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// 运行配置，从 ini 文件读取；读取失败时回退到默认值
type Config struct {
	N       int
	BoxSize float64

	C       float64
	TEnd    float64
	Workers int

	PushStride int

	Addr string
}

func DefaultConfig() Config {
	return Config{
		N:          256,
		BoxSize:    1.0,
		C:          1.0,
		TEnd:       2.0,
		Workers:    4,
		PushStride: 2,
		Addr:       ":9000",
	}
}

func LoadConfig(path string) Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithError(err).Warn("配置文件读取错误，使用默认配置")
		return DefaultConfig()
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	return Config{
		N:          file.Section("grid").Key("N").MustInt(256),
		BoxSize:    file.Section("grid").Key("BoxSize").MustFloat64(1.0),
		C:          file.Section("simulation").Key("C").MustFloat64(1.0),
		TEnd:       file.Section("simulation").Key("TEnd").MustFloat64(2.0),
		Workers:    file.Section("simulation").Key("Workers").MustInt(4),
		PushStride: file.Section("simulation").Key("PushStride").MustInt(2),
		Addr:       file.Section("server").Key("Addr").MustString(":9000"),
	}
}
