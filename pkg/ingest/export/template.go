package export

// Template sample rows. E-estado carries the state's numeric code.
var templateCPUs = [][]interface{}{
	{1, "DER-GTI001", "12345", "210000509", "Dell OptiPlex 7090", "Intel Core i5-11500", "8GB DDR4",
		"1TB SATA", nil, "Windows 11 Pro", "SIM", "2025-01-15", "João Silva", nil, "TI"},
	{2, "DER-GTI002", "12346", "210000510", "HP EliteDesk 800 G8", "Intel Core i7-11700", "16GB DDR4",
		nil, "512GB NVMe", "Windows 11 Pro", "SIM", nil, "Maria Santos", nil, "Administração"},
}

var instructionColumns = []Column{
	{"Campo", 20},
	{"Descrição", 40},
	{"Obrigatório", 12},
	{"Exemplo", 25},
}

var instructions = [][]interface{}{
	{"Item", "Número sequencial do equipamento", "Sim", "1, 2, 3..."},
	{"Nomenclatura", "Identificação única do equipamento", "Sim", "DER-GTI001"},
	{"Tombamento", "Número de tombamento patrimonial", "Não", "12345"},
	{"E-estado", "Código numérico do estado do equipamento", "Sim", "210000509, 210000510"},
	{"Marca/Modelo", "Marca e modelo do equipamento", "Sim", "Dell OptiPlex 7090"},
	{"Processador", "Modelo do processador", "Sim", "Intel Core i5-11500"},
	{"Memória RAM", "Quantidade de memória RAM", "Sim", "8GB DDR4"},
	{"HD", "Disco rígido (se houver)", "Não", "1TB SATA"},
	{"SSD", "SSD (se houver)", "Não", "512GB NVMe"},
	{"Sistema Operacional", "Sistema operacional instalado", "Sim", "Windows 11 Pro"},
	{"No Domínio", "Se está no domínio", "Sim", "SIM, NÃO"},
	{"Data Formatação", "Data da última formatação", "Não", "2025-01-15"},
	{"Responsável", "Responsável pelo equipamento", "Sim", "João Silva"},
	{"Desfazimento", "Informações de desfazimento", "Não", ""},
	{"Departamento", "Departamento responsável", "Sim", "TI, Administração"},
}

// InstructionSheet names the template's field reference sheet.
const InstructionSheet = "Instruções"

// Template returns an import template: a CPU sheet with sample rows and a
// sheet describing each column.
func Template() ([]byte, error) {
	w := newWriter()
	defer w.f.Close()

	if err := w.table(CPUSheet, CPUColumns, templateCPUs); err != nil {
		return nil, err
	}
	if err := w.table(InstructionSheet, instructionColumns, instructions); err != nil {
		return nil, err
	}
	return w.bytes()
}
