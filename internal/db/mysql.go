package db

import (
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLParams describes a MySQL connection by its parts.
type MySQLParams struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// DSN renders the parameters as a driver DSN.
func (p MySQLParams) DSN(loc *time.Location) string {
	cfg := mysql.NewConfig()
	cfg.User = p.User
	cfg.Passwd = p.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(p.Host, p.Port)
	cfg.DBName = p.Database
	cfg.ParseTime = true
	if loc != nil {
		cfg.Loc = loc
	}
	return cfg.FormatDSN()
}

// normalizeMySQLDSN forces timestamp parsing in loc so DATETIME columns scan as time.Time.
func normalizeMySQLDSN(dsn string, loc *time.Location) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = loc
	return cfg.FormatDSN(), nil
}
