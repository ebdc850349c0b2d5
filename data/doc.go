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
// Package data fornece containers de valores dinâmicos com uma superfície
// uniforme de acessores tipados, apoiada nos conversores do pacote convert.
//
// Visão Geral:
//   - AnyValue: caixa para um único valor dinâmico.
//   - AnyValueArray: sequência ordenada de valores dinâmicos, acessada por índice.
//   - AnyValueMap: map de chave string para valor dinâmico, armazenado como recebido.
//   - StringValueMap: igual ao AnyValueMap, mas todo valor é convertido para string
//     no momento da escrita.
//   - FilterParams: StringValueMap usado como parâmetros de filtro em consultas.
//   - Tags (NormalizeTag, CompressTag, ExtractHashTags...): utilitários de higiene de tags.
//   - NextShort / NextLong: geradores de identificadores.
//
// Todo acessor segue o padrão de três níveis:
//
//	GetAsNullableInteger(key) (int, bool) // (0, false) quando não conversível
//	GetAsInteger(key) int                 // zero do tipo como padrão
//	GetAsIntegerWithDefault(key, 10) int  // padrão do chamador
//
// Conversões nunca falham com erro: valores que não podem ser interpretados
// resultam em "sem valor" ou no padrão. Os containers não são seguros para
// uso concorrente; cada instância pertence a quem a criou.
//
// Exemplo:
//
//	params := data.NewStringValueMapFromString("host=localhost; port=8080; debug=yes")
//	port := params.GetAsIntegerWithDefault("port", 80) // 8080
//	debug := params.GetAsBoolean("debug")              // true
//	fmt.Println(params)                                // debug=yes;host=localhost;port=8080
package data
