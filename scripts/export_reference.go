// 导出内置参考数据脚本
//
// 将引擎内置的职业路径、技能趋势、学习策略等参考数据导出为 YAML，
// 作为 configs/reference.yaml 的编辑起点。导出前会校验数据，
// 指定 -check 时只校验现有文件，不写出。
//
// 用法: go run scripts/export_reference.go [-o configs/reference.full.yaml] [-check configs/reference.yaml]

package main

import (
	"coder_edu_learner/internal/engine"
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	out := flag.String("o", "", "输出文件，为空时写到标准输出")
	check := flag.String("check", "", "只校验指定的参考数据文件")
	flag.Parse()

	if *check != "" {
		ref, err := engine.LoadReference(*check)
		if err != nil {
			log.Fatalf("参考数据校验失败: %v", err)
		}
		log.Printf("参考数据有效: version=%s, %d 条职业路径", ref.Version, len(ref.CareerPaths))
		return
	}

	ref := engine.DefaultReference()
	if err := ref.Validate(); err != nil {
		log.Fatalf("内置参考数据无效: %v", err)
	}

	data, err := yaml.Marshal(ref)
	if err != nil {
		log.Fatalf("序列化失败: %v", err)
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("写入 %s 失败: %v", *out, err)
	}
	log.Printf("已导出到 %s", *out)
}
