package cmn

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var (
	GormDB *gorm.DB
)

// DBConfig dbms.* 配置
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pwd      string `mapstructure:"pwd"`
	DB       string `mapstructure:"db"`
	TimeZone string `mapstructure:"timeZone"`

	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
}

func (c DBConfig) validate() error {
	if c.Host == "" || c.Port == "" || c.User == "" || c.DB == "" {
		return errors.New("dbms host, port, user and db are required")
	}
	return nil
}

// DSN postgres 连接串
func (c DBConfig) DSN() string {
	tz := c.TimeZone
	if tz == "" {
		tz = "Asia/Shanghai"
	}
	return fmt.Sprintf("user=%v password=%v dbname=%v host=%v port=%v sslmode=disable TimeZone=%v",
		c.User, c.Pwd, c.DB, c.Host, c.Port, tz)
}

// InitDB 仅在启用监控存储时调用
func InitDB() {
	var cfg DBConfig
	err := viper.UnmarshalKey("dbms", &cfg)
	if err != nil {
		logger.Fatal("[ FAIL ] read db config failed: " + err.Error())
	}

	GormDB, err = OpenDB(cfg)
	if err != nil {
		logger.Fatal("[ FAIL ] init db failed: " + err.Error())
	}

	MiniLogger.Info("[ OK ] db module initialed")
}

// OpenDB 建立连接池并迁移监控表
func OpenDB(cfg DBConfig) (*gorm.DB, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Error),
	})
	if err != nil {
		logger.Error("connect to pg failed: " + err.Error())
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("get sql.DB failed: " + err.Error())
		return nil, err
	}

	sqlDB.SetMaxIdleConns(orDefault(cfg.MaxIdleConns, 5))
	sqlDB.SetMaxOpenConns(orDefault(cfg.MaxOpenConns, 20))
	sqlDB.SetConnMaxLifetime(orDefault(cfg.ConnMaxLifetime, time.Hour))
	sqlDB.SetConnMaxIdleTime(orDefault(cfg.ConnMaxIdleTime, time.Minute))

	if err := sqlDB.Ping(); err != nil {
		logger.Error("ping pg failed: " + err.Error())
		return nil, err
	}

	if err := db.AutoMigrate(&TMonitoringSnapshot{}); err != nil {
		logger.Error("auto migrate failed: " + err.Error())
		return nil, err
	}

	logger.Info("PG pool initialed")
	return db, nil
}

func orDefault[T int | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}
