package bar

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bar-assistant/internal/pkg/common"
)

// ImportResult CSV 匯入結果
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// csvHeader 預期的欄位順序
var csvHeader = []string{"name", "category", "type", "stock"}

// ImportCSV 批次匯入庫存。格式：name,category,type,stock，第一行為表頭。
// 逐行處理，壞行記錄後跳過，不中斷整批匯入。
func (s *InventoryService) ImportCSV(ctx context.Context, userID string, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // 行內欄位數自行驗證

	header, err := reader.Read()
	if err != nil {
		return nil, common.ErrInvalidCSV
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []string{}}
	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("第 %d 行：%v", line, err))
			continue
		}

		item, err := parseCSVRecord(record)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("第 %d 行：%v", line, err))
			continue
		}

		item.ID = common.GenerateUUID()
		if err := s.store.SaveInventoryItem(ctx, userID, *item); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("第 %d 行：%v", line, err))
			continue
		}
		result.Imported++
	}

	common.LogInfo("CSV 匯入完成",
		zap.String("user_id", userID),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// validateHeader 檢查表頭欄位名稱與順序
func validateHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return common.ErrInvalidCSV
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return common.ErrInvalidCSV
		}
	}
	return nil
}

// parseCSVRecord 解析單行為庫存品項
func parseCSVRecord(record []string) (*common.InventoryItem, error) {
	if len(record) != len(csvHeader) {
		return nil, fmt.Errorf("欄位數為 %d，預期 %d", len(record), len(csvHeader))
	}

	item := common.InventoryItem{
		Name:     strings.TrimSpace(record[0]),
		Category: common.Category(strings.ToLower(strings.TrimSpace(record[1]))),
		Type:     strings.TrimSpace(record[2]),
	}

	stock := strings.TrimSpace(record[3])
	if stock != "" {
		n, err := strconv.Atoi(stock)
		if err != nil {
			return nil, fmt.Errorf("庫存數量無法解析: %q", stock)
		}
		item.StockCount = n
	}

	if err := validateItem(&item); err != nil {
		return nil, err
	}
	return &item, nil
}
