package entities

// LegalModule is a dashboard entry point that opens a chat with a fixed category.
type LegalModule struct {
	Key         string        `json:"key"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    LegalCategory `json:"category"`
	DemoEnabled bool          `json:"demo_enabled"`
}

var moduleCatalog = []LegalModule{
	{Key: "criar-processo", Title: "Criar Processo", Description: "Assistência na criação e estruturação de novos processos judiciais.", Category: CategoryCivil},
	{Key: "analise-processual", Title: "Análise Processual", Description: "Análise detalhada de processos existentes com recomendações estratégicas.", Category: CategoryCivil},
	{Key: "correcao-processual", Title: "Correção Processual", Description: "Identificação e correção de inconsistências em peças processuais.", Category: CategoryCivil},
	{Key: "vademecum", Title: "Consultar Vademecum", Description: "Consulte leis, códigos e jurisprudências atualizadas do direito brasileiro.", Category: CategoryVademecum, DemoEnabled: true},
	{Key: "direito-civil", Title: "Direito Civil", Description: "Suporte em processos de família, contratos, responsabilidade civil e sucessões.", Category: CategoryCivil},
	{Key: "direito-trabalhista", Title: "Direito Trabalhista", Description: "Assistência em reclamações trabalhistas, acordos e direitos do trabalhador.", Category: CategoryLabor},
	{Key: "direito-empresarial", Title: "Direito Empresarial", Description: "Orientação em processos societários, falências e recuperação judicial.", Category: CategoryBusiness},
	{Key: "direito-tributario", Title: "Direito Tributário", Description: "Análise de questões fiscais, planejamento tributário e defesas administrativas.", Category: CategoryTax},
	{Key: "direito-administrativo", Title: "Direito Administrativo", Description: "Suporte em licitações, contratos administrativos e processos disciplinares.", Category: CategoryAdministrative},
	{Key: "direito-penal", Title: "Direito Penal", Description: "Assistência em processos criminais, defesas e recursos penais.", Category: CategoryCriminal},
	{Key: "pecas-processuais", Title: "Peças Processuais", Description: "Modelos e revisão de petições, contestações e recursos.", Category: CategoryCivil},
}

func Modules() []LegalModule {
	return append([]LegalModule(nil), moduleCatalog...)
}

func ModuleByKey(key string) (LegalModule, bool) {
	for _, m := range moduleCatalog {
		if m.Key == key {
			return m, true
		}
	}
	return LegalModule{}, false
}

// VademecumSuggestions are the canned statute names offered in vademecum chats.
var VademecumSuggestions = []string{
	"Código Civil",
	"Código de Processo Civil",
	"Código Penal",
	"Código de Processo Penal",
	"CLT",
	"Constituição Federal",
	"Lei das S.A.",
	"Código de Defesa do Consumidor",
	"Lei de Falências",
	"Lei de Licitações",
}
