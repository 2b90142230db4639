package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kacebover/extension-icons/icon"
)

// Фиксированные размеры иконок Chrome-расширения
var iconSizes = []int{16, 48, 128}

const outputDir = "icons"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

// run создаёт директорию icons/ и последовательно генерирует все иконки
func run() error {
	fmt.Println("🎨 Генерация иконок расширения...")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("ошибка создания директории %s: %v", outputDir, err)
	}

	generator := icon.NewGenerator()
	for _, size := range iconSizes {
		path := filepath.Join(outputDir, fmt.Sprintf("icon%d.png", size))
		if err := generator.Generate(size, path); err != nil {
			return err
		}
		fmt.Printf("Создан %s (%dx%d)\n", path, size, size)
	}

	fmt.Println("✅ Все иконки успешно созданы!")
	return nil
}
