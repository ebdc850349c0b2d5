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
// Package config representa configurações como um map plano de strings, em que
// chaves pontuadas ("logging.level") formam seções.
//
// Visão Geral:
// ConfigParams é um data.StringValueMap com operações de seção. Ele pode ser
// criado a partir de uma linha "chave=valor;...", de pares chave/valor ou de
// qualquer objeto aninhado, que é achatado em chaves pontuadas. ReadConfig lê
// arquivos YAML ou JSON, interpola ${env.NOME} e ${param.NOME} e devolve um
// ConfigParams.
//
// Exemplo:
//
//	params, err := config.ReadConfig(ctx, "./config.yaml", config.NewConfigParamsFromTuples("env", "dev"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	opts, err := config.NewLoggingOptions(params)
//	level := params.GetSection("logging").GetAsStringWithDefault("level", "info")
package config
