package ordercontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/guedes-jr/store-delizandra-api/repository"
)

// ExportOrdersToExcel downloads recent orders as an xlsx workbook.
// GET /admin/orders/export?limit=N (all orders when limit is omitted)
func ExportOrdersToExcel(orders repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = n
		}

		list, err := orders.ListRecent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderRef", "CustomerName", "CustomerPhone",
			"Channel", "Status", "Total", "Items", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, order := range list {
			row := sheet.AddRow()

			row.AddCell().SetValue(order.ID)
			row.AddCell().SetValue(order.OrderRef)
			row.AddCell().SetValue(order.CustomerName)
			row.AddCell().SetValue(order.CustomerPhone)
			row.AddCell().SetValue(order.Channel)
			row.AddCell().SetValue(order.Status)
			row.AddCell().SetValue(order.Total.StringFixed(2))

			var items []string
			for _, item := range order.Items {
				items = append(items, item.Name+" x"+strconv.Itoa(item.Qty))
			}
			row.AddCell().SetValue(strings.Join(items, ", "))

			row.AddCell().SetValue(order.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
