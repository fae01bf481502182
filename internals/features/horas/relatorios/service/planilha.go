package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"bancohoras_backend/internals/features/horas/relatorios/dto"
	helper "bancohoras_backend/internals/helpers"
)

var nomesMeses = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// estilos pré-registrados no workbook
type estilosPlanilha struct {
	titulo     int
	cabecalho  int
	borda      int
	totalLabel int
	totalValor int
}

func registrarEstilos(f *excelize.File) (estilosPlanilha, error) {
	var e estilosPlanilha
	var err error

	bordaFina := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	centro := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	if e.titulo, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: centro,
	}); err != nil {
		return e, err
	}
	if e.cabecalho, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: centro,
		Border:    bordaFina,
	}); err != nil {
		return e, err
	}
	if e.borda, err = f.NewStyle(&excelize.Style{Border: bordaFina}); err != nil {
		return e, err
	}
	if e.totalLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: centro,
		Border:    bordaFina,
	}); err != nil {
		return e, err
	}
	if e.totalValor, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: bordaFina,
	}); err != nil {
		return e, err
	}
	return e, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GerarExcel produz a planilha do período e o nome de arquivo para download.
// Qualquer falha de consulta ou layout aborta a geração inteira — nunca
// devolvemos planilha parcial.
func (s *RelatorioService) GerarExcel(ctx context.Context, p dto.Periodo) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	estilos, err := registrarEstilos(f)
	if err != nil {
		return nil, "", err
	}

	switch p.Tipo {
	case dto.TipoMensal:
		dados, err := s.DadosMensais(ctx, p.Mes, p.Ano, p.FuncionarioID)
		if err != nil {
			return nil, "", err
		}
		err = montarPlanilhaMensal(f, dados, p.Rotulo(), estilos)
		if err != nil {
			return nil, "", err
		}
	case dto.TipoAnual:
		dados, err := s.DadosAnuais(ctx, p.Ano, p.FuncionarioID)
		if err != nil {
			return nil, "", err
		}
		err = montarPlanilhaAnual(f, dados, p.Rotulo(), estilos)
		if err != nil {
			return nil, "", err
		}
	case dto.TipoDiario:
		dados, err := s.DadosDiarios(ctx, p.Mes, p.Ano, p.FuncionarioID)
		if err != nil {
			return nil, "", err
		}
		err = montarPlanilhaDiaria(f, dados, p.Rotulo(), estilos)
		if err != nil {
			return nil, "", err
		}
	default:
		return nil, "", fmt.Errorf("tipo de relatório inválido: %q", p.Tipo)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	nome := fmt.Sprintf("relatorio_horas_%s_%s.xlsx", p.Tipo, time.Now().Format("20060102_150405"))
	return buf.Bytes(), nome, nil
}

func montarPlanilhaMensal(f *excelize.File, dados []dto.TotalFuncionario, rotulo string, estilos estilosPlanilha) error {
	const aba = "Relatório Mensal"
	f.SetSheetName("Sheet1", aba)

	if err := f.MergeCell(aba, "A1", "D1"); err != nil {
		return err
	}
	f.SetCellValue(aba, "A1", "RELATÓRIO MENSAL DE HORAS - "+rotulo)
	f.SetCellStyle(aba, "A1", "D1", estilos.titulo)

	// linha 2 fica em branco como respiro visual
	cabecalhos := []string{"Área de Atuação", "Cargo", "Nome do Funcionário", "Horas"}
	if err := escreverCabecalhos(f, aba, cabecalhos, estilos.cabecalho); err != nil {
		return err
	}

	// ordenação: área, cargo, nome — lexicográfica, case-sensitive
	sort.SliceStable(dados, func(i, j int) bool {
		if dados[i].Area != dados[j].Area {
			return dados[i].Area < dados[j].Area
		}
		if dados[i].Cargo != dados[j].Cargo {
			return dados[i].Cargo < dados[j].Cargo
		}
		return dados[i].Nome < dados[j].Nome
	})

	linha := 4
	totalGeral := 0.0
	for _, d := range dados {
		total := round2(d.TotalHoras)
		if total <= 0 {
			continue
		}
		f.SetCellValue(aba, celula(1, linha), d.Area)
		f.SetCellValue(aba, celula(2, linha), d.Cargo)
		f.SetCellValue(aba, celula(3, linha), d.Nome)
		f.SetCellValue(aba, celula(4, linha), total)
		f.SetCellStyle(aba, celula(1, linha), celula(4, linha), estilos.borda)

		totalGeral += total
		linha++
	}

	if linha > 4 {
		if err := escreverTotalGeral(f, aba, linha+1, 3, 4, totalGeral, estilos); err != nil {
			return err
		}
	}

	return ajustarLarguras(f, aba, []float64{25, 20, 25, 15})
}

func montarPlanilhaAnual(f *excelize.File, dados []dto.TotalAnual, rotulo string, estilos estilosPlanilha) error {
	const aba = "Relatório Anual"
	f.SetSheetName("Sheet1", aba)

	if err := f.MergeCell(aba, "A1", "P1"); err != nil {
		return err
	}
	f.SetCellValue(aba, "A1", "RELATÓRIO ANUAL DE HORAS - "+rotulo)
	f.SetCellStyle(aba, "A1", "P1", estilos.titulo)

	cabecalhos := append([]string{"Área de Atuação", "Cargo", "Nome do Funcionário"}, nomesMeses[:]...)
	cabecalhos = append(cabecalhos, "Total")
	if err := escreverCabecalhos(f, aba, cabecalhos, estilos.cabecalho); err != nil {
		return err
	}

	sort.SliceStable(dados, func(i, j int) bool {
		if dados[i].Area != dados[j].Area {
			return dados[i].Area < dados[j].Area
		}
		if dados[i].Cargo != dados[j].Cargo {
			return dados[i].Cargo < dados[j].Cargo
		}
		return dados[i].Nome < dados[j].Nome
	})

	linha := 4
	totalGeral := 0.0
	for _, d := range dados {
		total := round2(d.TotalHoras)
		if total <= 0 {
			continue
		}
		f.SetCellValue(aba, celula(1, linha), d.Area)
		f.SetCellValue(aba, celula(2, linha), d.Cargo)
		f.SetCellValue(aba, celula(3, linha), d.Nome)

		for mes := 1; mes <= 12; mes++ {
			horas := round2(d.Meses[mes].Horas)
			if horas > 0 {
				f.SetCellValue(aba, celula(mes+3, linha), horas)
			} else {
				// mês sem atividade vira "-" em vez de 0
				f.SetCellValue(aba, celula(mes+3, linha), "-")
			}
		}

		f.SetCellValue(aba, celula(16, linha), total)
		f.SetCellStyle(aba, celula(1, linha), celula(16, linha), estilos.borda)

		totalGeral += total
		linha++
	}

	if linha > 4 {
		if err := escreverTotalGeral(f, aba, linha+1, 3, 16, totalGeral, estilos); err != nil {
			return err
		}
	}

	larguras := make([]float64, 0, 16)
	larguras = append(larguras, 25, 20, 25)
	for i := 0; i < 12; i++ {
		larguras = append(larguras, 10)
	}
	larguras = append(larguras, 12)
	return ajustarLarguras(f, aba, larguras)
}

func montarPlanilhaDiaria(f *excelize.File, dados []dto.RegistroDetalhado, rotulo string, estilos estilosPlanilha) error {
	const aba = "Relatório Diário"
	f.SetSheetName("Sheet1", aba)

	if err := f.MergeCell(aba, "A1", "E1"); err != nil {
		return err
	}
	f.SetCellValue(aba, "A1", "RELATÓRIO DIÁRIO DE HORAS - "+rotulo)
	f.SetCellStyle(aba, "A1", "E1", estilos.titulo)

	cabecalhos := []string{"Área de Atuação", "Cargo", "Nome do Funcionário", "Data", "Horas"}
	if err := escreverCabecalhos(f, aba, cabecalhos, estilos.cabecalho); err != nil {
		return err
	}

	type linhaDiaria struct {
		area, cargo, nome, data string
		horas                   float64
	}
	linhas := make([]linhaDiaria, 0, len(dados))
	for _, d := range dados {
		linhas = append(linhas, linhaDiaria{
			area:  d.Area,
			cargo: d.Cargo,
			nome:  d.Nome,
			data:  d.Data.Format(helper.FormatoDataBR),
			horas: round2(d.Horas),
		})
	}

	// a data formatada dd/mm/yyyy entra como quarta chave de ordenação
	sort.SliceStable(linhas, func(i, j int) bool {
		if linhas[i].area != linhas[j].area {
			return linhas[i].area < linhas[j].area
		}
		if linhas[i].cargo != linhas[j].cargo {
			return linhas[i].cargo < linhas[j].cargo
		}
		if linhas[i].nome != linhas[j].nome {
			return linhas[i].nome < linhas[j].nome
		}
		return linhas[i].data < linhas[j].data
	})

	linha := 4
	totalGeral := 0.0
	for _, d := range linhas {
		f.SetCellValue(aba, celula(1, linha), d.area)
		f.SetCellValue(aba, celula(2, linha), d.cargo)
		f.SetCellValue(aba, celula(3, linha), d.nome)
		f.SetCellValue(aba, celula(4, linha), d.data)
		f.SetCellValue(aba, celula(5, linha), d.horas)
		f.SetCellStyle(aba, celula(1, linha), celula(5, linha), estilos.borda)

		totalGeral += d.horas
		linha++
	}

	if linha > 4 {
		if err := escreverTotalGeral(f, aba, linha+1, 4, 5, totalGeral, estilos); err != nil {
			return err
		}
	}

	return ajustarLarguras(f, aba, []float64{25, 20, 25, 15, 15})
}

/* =======================================================
   Blocos comuns de layout
   ======================================================= */

func escreverCabecalhos(f *excelize.File, aba string, cabecalhos []string, estilo int) error {
	for i, h := range cabecalhos {
		c := celula(i+1, 3)
		if err := f.SetCellValue(aba, c, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(aba, c, c, estilo); err != nil {
			return err
		}
	}
	return nil
}

// escreverTotalGeral escreve a linha "TOTAL GERAL": rótulo mesclado das
// colunas 1..colLabel e a soma dos totais exibidos na coluna colValor.
func escreverTotalGeral(f *excelize.File, aba string, linha, colLabel, colValor int, total float64, estilos estilosPlanilha) error {
	if err := f.MergeCell(aba, celula(1, linha), celula(colLabel, linha)); err != nil {
		return err
	}
	f.SetCellValue(aba, celula(1, linha), "TOTAL GERAL")
	f.SetCellStyle(aba, celula(1, linha), celula(colLabel, linha), estilos.totalLabel)
	f.SetCellValue(aba, celula(colValor, linha), round2(total))
	f.SetCellStyle(aba, celula(colValor, linha), celula(colValor, linha), estilos.totalValor)
	return nil
}

func ajustarLarguras(f *excelize.File, aba string, larguras []float64) error {
	for i, largura := range larguras {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(aba, col, col, largura); err != nil {
			return err
		}
	}
	return nil
}

func celula(col, linha int) string {
	c, _ := excelize.CoordinatesToCellName(col, linha)
	return c
}
