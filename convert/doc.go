// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package convert fornece as regras de conversão entre tipos dinâmicos usadas
// por todo o toolkit como "língua franca" para dados fracamente tipados
// (JSON, YAML, variáveis de ambiente, query strings).
//
// Visão Geral:
// Cada conversor primitivo expõe três níveis de API:
//   - ToNullableX(value): melhor esforço, retorna (valor, true) ou (zero, false) quando
//     a conversão não é possível. Nunca gera panic nem erro.
//   - ToX(value): sempre retorna um valor, usando o zero do tipo como padrão.
//   - ToXWithDefault(value, defaultValue): usa o padrão informado pelo chamador.
//
// Modelo de Valores:
//
//	Integer  -> int
//	Long     -> int64
//	Float    -> float32
//	Double   -> float64
//	DateTime -> time.Time
//	Duration -> time.Duration
//	Array    -> []any
//	Map      -> map[string]any
//
// Valores que implementam ValueWrapper (os containers do pacote data) são
// desembrulhados antes de qualquer conversão.
//
// Funcionalidades Principais:
//   - TypeCode e ToTypeCode: classificação de um valor no universo abstrato de tipos.
//   - ToType / ToNullableType / ToTypeWithDefault: despacho por TypeCode.
//   - MatchType / MatchTypeByName / MatchValueType: compatibilidade entre um tipo
//     esperado (código ou nome) e um valor real, com alargamento numérico.
//   - ToJson / FromJson / JsonToMap: ponte com texto JSON.
//
// Exemplo:
//
//	enabled := convert.ToBoolean("YES")             // true
//	port := convert.ToIntegerWithDefault("abc", 80) // 80
//	tc := convert.ToTypeCode(12.5)                  // convert.Double
//	ok := convert.MatchTypeByName("float", convert.Long, nil) // true
package convert
