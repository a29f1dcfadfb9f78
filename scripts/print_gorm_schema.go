package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/cydxin/burnroom/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Usage:
//
//	export MYSQL_DSN=user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=true&loc=Local
//	go run ./scripts/print_gorm_schema.go
//
// 对比导出归档表的 GORM 字段定义与库里实际的列
func main() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		log.Fatal("MYSQL_DSN is empty")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&models.RoomExport{}); err != nil {
		log.Fatalf("parse room export: %v", err)
	}

	fmt.Println("=== GORM Parsed Fields ===")
	names := make([]string, 0, len(stmt.Schema.FieldsByDBName))
	for k := range stmt.Schema.FieldsByDBName {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, n := range names {
		f := stmt.Schema.FieldsByDBName[n]
		fmt.Printf("%s\t%s\t%s\n", f.DBName, stmt.DB.Dialector.DataTypeOf(f), f.Tag.Get("gorm"))
	}

	table := models.RoomExport{}.TableName()
	type col struct {
		Field string
		Type  string
		Null  string
		Key   string
	}
	var cols []col
	if err := db.Raw("SHOW COLUMNS FROM " + table).Scan(&cols).Error; err != nil {
		fmt.Println("SHOW COLUMNS FROM", table, "failed:", err)
		return
	}
	fmt.Println("=== SHOW COLUMNS FROM " + table + " ===")
	for _, c := range cols {
		fmt.Printf("%s\t%s\t%s\t%s\n", c.Field, c.Type, c.Null, c.Key)
	}
}
