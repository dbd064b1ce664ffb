package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"floodwatch/config"
	"floodwatch/models"
)

// ExportReportsToExcel streams an Excel workbook of all flood reports.
func ExportReportsToExcel(w http.ResponseWriter, r *http.Request) {
	var reports []models.FloodReport
	if err := config.DB.Order("created_at DESC").Find(&reports).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Flood Reports"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"ID", "User ID", "Description", "Level", "Status", "Location",
		"Latitude", "Longitude", "Household Size", "Children <5", "Elderly",
		"Disabled/Bedridden", "Medical Conditions", "Pets/Livestock",
		"Images", "Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	boolText := map[bool]string{true: "yes", false: "no"}
	for row, rep := range reports {
		values := []interface{}{
			rep.ID.String(),
			rep.UserID.String(),
			rep.Description,
			rep.Level,
			rep.Status,
			rep.Location,
			rep.Latitude,
			rep.Longitude,
			rep.HouseholdSize,
			rep.ChildrenUnder5,
			rep.ElderlyMembers,
			rep.DisabledMembers,
			boolText[rep.MedicalConditions],
			rep.PetsLivestock,
			len(rep.ImageURLs),
			rep.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("flood-reports-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(buffer.Bytes())
}
