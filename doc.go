// Package fast_service_commons fornece a camada de valores dinâmicos usada
// pelos serviços da toolkit: conversão de tipos, contêineres de valores
// fracamente tipados e a configuração construída sobre eles.
//
// Visão Geral:
// O módulo é organizado em camadas independentes:
// 1. Conversão (convert): Coerções tolerantes entre tipos, com formas anuláveis e padrões.
// 2. Contêineres (data): AnyValue, AnyValueArray, AnyValueMap e StringValueMap.
// 3. Configuração (config, envloader): ConfigParams, leitura de YAML/JSON e variáveis de ambiente.
// 4. Regras (pkg/rules): Expressões CEL avaliadas sobre mapas dinâmicos.
// 5. DynamoDB (pkg/dynconv): Conversão entre mapas dinâmicos e itens do DynamoDB.
//
// Sub-Pacotes Principais:
//
// 1. convert:
//   - TypeConverter com TypeCode e conversores por tipo (ToInteger, ToNullableDateTime, ...).
//   - Serialização JSON e conversão recursiva de estruturas.
//
// 2. data:
//   - Contêineres com acessores GetAsX, FilterParams, tags e geração de IDs.
//
// 3. config:
//   - ConfigParams com seções, leitura de arquivos com interpolação de parâmetros.
//
// Exemplo de Início Rápido:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/raywall/fast-service-commons/config"
//		"github.com/raywall/fast-service-commons/data"
//	)
//
//	func main() {
//		params := config.NewConfigParamsFromString("db.host=localhost;db.port=5432")
//		db := params.GetSection("db")
//		fmt.Println(db.GetAsString("host"), db.GetAsInteger("port"))
//
//		m := data.NewAnyValueMapFromTuples("count", "12")
//		fmt.Println(m.GetAsLong("count") + 1)
//	}
package fast_service_commons
