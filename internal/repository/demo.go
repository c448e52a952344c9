// internal/repository/demo.go
package repository

import "gridapp/internal/model"

// DemoTopics はオフライン/デモモードで最初に表示するトピック一式を返します。
// 呼び出しごとに新しいスライスを返すため、呼び出し側が自由に変更できます。
func DemoTopics() []model.Topic {
	return []model.Topic{
		{
			ID:        "latin-sufijos",
			Name:      "Latin - Sufijos",
			CardCount: 3,
			Columns: []model.ColumnConfig{
				{ID: "c1", Name: "Sufijo", Type: model.ColumnText, Order: 1},
				{ID: "c2", Name: "Significado", Type: model.ColumnText, Order: 2},
				{ID: "c3", Name: "Ejemplo", Type: model.ColumnText, Order: 3},
				{ID: "c4", Name: "Definicion", Type: model.ColumnText, Order: 4},
			},
			Cards: []model.Card{
				{ID: 2, RowIndex: 0, Cells: model.CellData{"Sufijo": "-a", "Significado": "agente / ocupacion", "Ejemplo": "escrib-a", "Definicion": "Que escribe, oficio de escritura."}},
				{ID: 3, RowIndex: 1, Cells: model.CellData{"Sufijo": "-alis, -aris", "Significado": "relacion / pertenencia", "Ejemplo": "vit-al", "Definicion": "Intima relacion con la vida."}},
				{ID: 4, RowIndex: 2, Cells: model.CellData{"Sufijo": "-ax/-ix/-ox", "Significado": "tendencia intensa", "Ejemplo": "fal-az", "Definicion": "Que es muy enganoso."}},
			},
		},
		{
			ID:        "latin-raices",
			Name:      "Latin - Raices",
			CardCount: 3,
			Columns: []model.ColumnConfig{
				{ID: "c1", Name: "Raiz", Type: model.ColumnText, Order: 1},
				{ID: "c2", Name: "Significado", Type: model.ColumnText, Order: 2},
				{ID: "c3", Name: "Ejemplo", Type: model.ColumnText, Order: 3},
				{ID: "c4", Name: "Definicion", Type: model.ColumnText, Order: 4},
			},
			Cards: []model.Card{
				{ID: 2, RowIndex: 0, Cells: model.CellData{"Raiz": "acer, acris", "Significado": "acido, agrio", "Ejemplo": "acrimonia", "Definicion": "Aspereza de las cosas."}},
				{ID: 3, RowIndex: 1, Cells: model.CellData{"Raiz": "aedes", "Significado": "templo, edificio", "Ejemplo": "edificio", "Definicion": "Construccion fija."}},
				{ID: 4, RowIndex: 2, Cells: model.CellData{"Raiz": "aequus", "Significado": "igual, equilibrio", "Ejemplo": "ecuacion", "Definicion": "Igualdad de incognitas."}},
			},
		},
		{
			ID:        "origenes-raices",
			Name:      "Origenes y Raices",
			CardCount: 3,
			Columns: []model.ColumnConfig{
				{ID: "c1", Name: "Origen", Type: model.ColumnText, Order: 1},
				{ID: "c2", Name: "Raiz (Procedencia)", Type: model.ColumnText, Order: 2},
				{ID: "c3", Name: "Nucleo (Ejemplo)", Type: model.ColumnFormula, Order: 3},
			},
			Cards: []model.Card{
				{ID: 2, RowIndex: 0, Cells: model.CellData{"Origen": "Latino", "Raiz (Procedencia)": "Forme / Rectus", "Nucleo (Ejemplo)": "Forma, uniforme / Recto"}},
				{ID: 3, RowIndex: 1, Cells: model.CellData{"Origen": "Griego", "Raiz (Procedencia)": "Morfo / Teo", "Nucleo (Ejemplo)": "Amorfo / Ateo"}},
				{ID: 4, RowIndex: 2, Cells: model.CellData{"Origen": "Quechua", "Raiz (Procedencia)": "Ch'aki / Ch'ullu", "Nucleo (Ejemplo)": "Charqui / Chullo"}},
			},
		},
	}
}
