package catalog

import "wingorder/internal"

// DefaultPricing is the factory catalog. The store seeds itself with a
// deep copy of this on first run; edits never touch it.
func DefaultPricing() internal.PricingConfig {
	return internal.PricingConfig{
		"연두": {
			Deadline:      "09:00",
			BankName:      "우리은행",
			AccountNumber: "1005103634084",
			Products: map[string]internal.ProductPricing{
				"포기김치 3kg":  {SupplyPrice: 16300, DisplayName: "포기김치 3kg"},
				"포기김치 5kg":  {SupplyPrice: 21300, DisplayName: "포기김치 5kg"},
				"포기김치 10kg": {SupplyPrice: 33000, DisplayName: "포기김치 10kg"},
				"총각김치 2kg":  {SupplyPrice: 11800, DisplayName: "총각김치 2kg"},
				"총각김치 5kg":  {SupplyPrice: 23800, DisplayName: "총각김치 5kg"},
				"총각김치 10kg": {SupplyPrice: 43400, DisplayName: "총각김치 10kg"},
			},
		},
		"웰그린": {
			Deadline:      "09:00",
			BankName:      "농협(웰그린푸드)",
			AccountNumber: "3511291313313",
			Products: map[string]internal.ProductPricing{
				"제주 구좌 당근 중 3kg":            {SupplyPrice: 5400, DisplayName: "제주 구좌 당근 중 3kg"},
				"제주 구좌 당근 상 3kg":            {SupplyPrice: 5700, DisplayName: "제주 구좌 당근 상 3kg"},
				"제주 구좌 당근 특 3kg":            {SupplyPrice: 6000, DisplayName: "제주 구좌 당근 특 3kg"},
				"제주 구좌 당근 중 5kg":            {SupplyPrice: 7000, DisplayName: "제주 구좌 당근 중 5kg"},
				"제주 구좌 당근 상 5kg":            {SupplyPrice: 7700, DisplayName: "제주 구좌 당근 상 5kg"},
				"제주 구좌 당근 특 5kg":            {SupplyPrice: 8400, DisplayName: "제주 구좌 당근 특 5kg"},
				"제주 구좌 당근 중 10kg":           {SupplyPrice: 10500, DisplayName: "제주 구좌 당근 중 10kg"},
				"제주 구좌 당근 상 10kg":           {SupplyPrice: 11500, DisplayName: "제주 구좌 당근 상 10kg"},
				"제주 구좌 당근 특 10kg":           {SupplyPrice: 12500, DisplayName: "제주 구좌 당근 특 10kg"},
				"제주 구좌 당근 왕 3kg":            {SupplyPrice: 5000, DisplayName: "제주 구좌 당근 왕 3kg"},
				"제주 구좌 당근 왕 5kg":            {SupplyPrice: 6300, DisplayName: "제주 구좌 당근 왕 5kg"},
				"제주 구좌 당근 왕 10kg":           {SupplyPrice: 9500, DisplayName: "제주 구좌 당근 왕 10kg"},
				"사과 선물세트 (9과)":              {SupplyPrice: 25000, DisplayName: "사과 선물세트 (9과)", Margin: 3976},
				"혼합 과일 선물세트 (6과)":           {SupplyPrice: 20000, DisplayName: "혼합 과일 선물세트 (6과)", Margin: 6414},
				"샤인머스캣 선물세트 1.6kg (2수)":      {SupplyPrice: 15000, DisplayName: "샤인머스캣 선물세트 1.6kg (2수)", Margin: 5142},
				"★A급 가정용 부사사과 2kg내외 13-15과":  {SupplyPrice: 8250, DisplayName: "★A급 가정용 부사사과 2kg내외 13-15과", Margin: 2704},
				"★A급 가정용 부사사과 3kg내외 17-20과":  {SupplyPrice: 12450, DisplayName: "★A급 가정용 부사사과 3kg내외 17-20과", Margin: 3275},
				"★A급 가정용 부사사과 5kg내외 27-32과":  {SupplyPrice: 17650, DisplayName: "★A급 가정용 부사사과 5kg내외 27-32과", Margin: 5053},
				"★A급 가정용 부사 사과 10kg내외 51-65과": {SupplyPrice: 32500, DisplayName: "★A급 가정용 부사 사과 10kg내외 51-65과", Margin: 5398},
				"부사사과2kg내외 13-15과":           {SupplyPrice: 7500, DisplayName: "부사사과2kg내외 13-15과", Margin: 2571},
				"부사사과4kg내외 16-20과":           {SupplyPrice: 14000, DisplayName: "부사사과4kg내외 16-20과", Margin: 4905},
				"부사 사과8kg내외 31-40과":          {SupplyPrice: 24000, DisplayName: "부사 사과8kg내외 31-40과", Margin: 4092},
			},
		},
		"팜플로우": {
			Deadline:      "09:00",
			BankName:      "은행명",
			AccountNumber: "계좌번호",
			Products: map[string]internal.ProductPricing{
				"프리미엄과일 선물세트 혼합 5호": {SupplyPrice: 56500, DisplayName: "프리미엄과일 선물세트 혼합 5호", Margin: 7458},
			},
		},
		"고랭지김치": {
			Deadline:      "10:00",
			BankName:      "기업은행",
			AccountNumber: "58906027204014",
			Products: map[string]internal.ProductPricing{
				"3kg":  {SupplyPrice: 16300, DisplayName: "3kg"},
				"5kg":  {SupplyPrice: 21300, DisplayName: "5kg"},
				"7kg":  {SupplyPrice: 25600, DisplayName: "7kg"},
				"10kg": {SupplyPrice: 33000, DisplayName: "10kg"},
			},
		},
		"답도": {
			Deadline:      "10:00",
			Phone:         "01042626343",
			BankName:      "농협",
			AccountNumber: "301-6600-4079-21",
			Products: map[string]internal.ProductPricing{
				"한라봉 2,5KG 소과(13-20과 내외) 가정용": {SupplyPrice: 18500, DisplayName: "한라봉 2,5KG 소과(13-20과 내외) 가정용"},
				"한라봉 2.5KG 중과(10-12과 내외) 가정용": {SupplyPrice: 20000, DisplayName: "한라봉 2.5KG 중과(10-12과 내외) 가정용"},
				"한라봉 2.5KG 대과(06-09과 내외) 가정용": {SupplyPrice: 21500, DisplayName: "한라봉 2.5KG 대과(06-09과 내외) 가정용"},
				"한라봉 4.5KG 소과(24-35과 내외) 가정용": {SupplyPrice: 29500, DisplayName: "한라봉 4.5KG 소과(24-35과 내외) 가정용"},
				"한라봉 4.5KG 중과(18-23과 내외) 가정용": {SupplyPrice: 32000, DisplayName: "한라봉 4.5KG 중과(18-23과 내외) 가정용"},
				"한라봉 4.5KG 대과(09-17과 내외) 가정용": {SupplyPrice: 34000, DisplayName: "한라봉 4.5KG 대과(09-17과 내외) 가정용"},
				"한라봉 2,5KG 소과(15-20과 내외) 선물용": {SupplyPrice: 22500, DisplayName: "한라봉 2,5KG 소과(15-20과 내외) 선물용"},
				"한라봉 2.5KG 중과(11-14과 내외) 선물용": {SupplyPrice: 23500, DisplayName: "한라봉 2.5KG 중과(11-14과 내외) 선물용"},
				"한라봉 2.5KG 대과(06-10과 내외) 선물용": {SupplyPrice: 24500, DisplayName: "한라봉 2.5KG 대과(06-10과 내외) 선물용"},
				"한라봉 4.5KG 소과(24-30과 내외) 선물용": {SupplyPrice: 35000, DisplayName: "한라봉 4.5KG 소과(24-30과 내외) 선물용"},
				"한라봉 4.5KG 중과(18-23과 내외) 선물용": {SupplyPrice: 37000, DisplayName: "한라봉 4.5KG 중과(18-23과 내외) 선물용"},
				"한라봉 4.5KG 대과(10-17과 내외) 선물용": {SupplyPrice: 38000, DisplayName: "한라봉 4.5KG 대과(10-17과 내외) 선물용"},
			},
		},
		"제이제이": {
			Deadline:         "14:00",
			BankName:         "국민은행",
			AccountNumber:    "89253700006218",
			OrderFormHeaders: []string{"송하인", "송하인주소", "송하인연락처", "품목", "받는분성명", "받는분주소", "받는분연락처", "배송메시지", "주문번호"},
			Products: map[string]internal.ProductPricing{
				"노지감귤 3kg 로얄과(S/M)":   {SupplyPrice: 9500, DisplayName: "노지감귤 3kg 로얄과(S/M)"},
				"노지감귤 5kg 로얄과(S/M)":   {SupplyPrice: 12500, DisplayName: "노지감귤 5kg 로얄과(S/M)"},
				"노지감귤 10kg 로얄과(S/M)":  {SupplyPrice: 19500, DisplayName: "노지감귤 10kg 로얄과(S/M)"},
				"노지감귤 10kg 중대과(L/L2)": {SupplyPrice: 10000, DisplayName: "노지감귤 10kg 중대과(L/L2)"},
				"제주 순살 갈치 5마리":        {SupplyPrice: 15500, DisplayName: "제주 순살 갈치 5마리"},
				"제주 은갈치 5마리 (중)":      {SupplyPrice: 19000, DisplayName: "제주 은갈치 5마리 (중)"},
				"제주 은갈치 5마리 (대)":      {SupplyPrice: 35500, DisplayName: "제주 은갈치 5마리 (대)"},
				"제주 노지 한라봉(정품) 3kg":   {SupplyPrice: 13000, DisplayName: "제주 노지 한라봉(정품) 3kg"},
				"제주 노지 한라봉(정품) 5kg":   {SupplyPrice: 18500, DisplayName: "제주 노지 한라봉(정품) 5kg"},
				"제주 노지 한라봉(정품) 10kg":  {SupplyPrice: 32000, DisplayName: "제주 노지 한라봉(정품) 10kg"},
				"제주 하우스 한라봉 선물세트 3kg": {SupplyPrice: 23500, DisplayName: "제주 하우스 한라봉 선물세트 3kg"},
				"제주 하우스 한라봉 선물세트 5kg": {SupplyPrice: 33500, DisplayName: "제주 하우스 한라봉 선물세트 5kg"},
			},
		},
		"신선마켓": {
			Deadline:      "14:00",
			BankName:      "농협",
			AccountNumber: "35711240304018",
			Products: map[string]internal.ProductPricing{
				"제주(서귀포) 감귤 1kg / L~2L":  {SupplyPrice: 4600, DisplayName: "제주(서귀포) 감귤 1kg / L~2L"},
				"제주(서귀포) 감귤 1kg / 2S-M":  {SupplyPrice: 5100, DisplayName: "제주(서귀포) 감귤 1kg / 2S-M"},
				"제주(서귀포) 감귤 2kg / L~2L":  {SupplyPrice: 5800, DisplayName: "제주(서귀포) 감귤 2kg / L~2L"},
				"제주(서귀포) 감귤 2kg / 2S-M":  {SupplyPrice: 7000, DisplayName: "제주(서귀포) 감귤 2kg / 2S-M"},
				"제주(서귀포) 감귤 3kg / L~2L":  {SupplyPrice: 7000, DisplayName: "제주(서귀포) 감귤 3kg / L~2L"},
				"제주(서귀포) 감귤 3kg / 2S-M":  {SupplyPrice: 8600, DisplayName: "제주(서귀포) 감귤 3kg / 2S-M"},
				"제주(서귀포) 감귤 5kg / L~2L":  {SupplyPrice: 8300, DisplayName: "제주(서귀포) 감귤 5kg / L~2L"},
				"제주(서귀포) 감귤 5kg / 2S-M":  {SupplyPrice: 11000, DisplayName: "제주(서귀포) 감귤 5kg / 2S-M"},
				"제주(서귀포) 감귤 10kg / 2S-M": {SupplyPrice: 22000, DisplayName: "제주(서귀포) 감귤 10kg / 2S-M"},
				"제주(서귀포) 감귤 10kg / L~2L": {SupplyPrice: 16600, DisplayName: "제주(서귀포) 감귤 10kg / L~2L"},
			},
		},
		"귤_초록": {
			Phone: "010-4262-6343",
			Products: map[string]internal.ProductPricing{
				"제주 노지 조생 감귤 특상품 벌크 S~M / 10kg":  {SupplyPrice: 22700, DisplayName: "제주 노지 조생 감귤 특상품 벌크 S~M / 10kg"},
				"제주 노지 조생 감귤 특상품 벌크 L~2L / 10kg": {SupplyPrice: 10000, DisplayName: "제주 노지 조생 감귤 특상품 벌크 L~2L / 10kg"},
			},
		},
		"홍게": {
			Products: map[string]internal.ProductPricing{
				"B급 6kg (12~15미내외)": {SupplyPrice: 15000, DisplayName: "B급 6kg (12~15미내외)"},
				"A급 9kg (25미내외)":    {SupplyPrice: 20000, DisplayName: "A급 9kg (25미내외)"},
			},
		},
		"꽃게": {
			Phone: "010-1234-5678",
			Products: map[string]internal.ProductPricing{
				"2kg": {SupplyPrice: 21500, DisplayName: "빙장꽃게 2kg"},
				"3kg": {SupplyPrice: 30500, DisplayName: "빙장꽃게 3kg"},
			},
		},
		"홍게2": {
			Products: map[string]internal.ProductPricing{
				"홍게 3kg": {SupplyPrice: 10000, DisplayName: "홍게 3kg"},
			},
		},
		"황금향": {
			Phone: "010-9876-5432",
			Products: map[string]internal.ProductPricing{
				"황금향 2kg (가정용)":  {SupplyPrice: 10000, DisplayName: "황금향 2kg (가정용)"},
				"황금향 3kg (가정용)":  {SupplyPrice: 13000, DisplayName: "황금향 3kg (가정용)"},
				"황금향 5kg (가정용)":  {SupplyPrice: 19500, DisplayName: "황금향 5kg (가정용)"},
				"황금향 2kg (선물세트)": {SupplyPrice: 11500, DisplayName: "황금향 2kg (선물세트)"},
				"황금향 3kg (선물세트)": {SupplyPrice: 15000, DisplayName: "황금향 3kg (선물세트)"},
				"황금향 5kg (선물세트)": {SupplyPrice: 21000, DisplayName: "황금향 5kg (선물세트)"},
			},
		},
		"귤": {
			Phone: "010-9876-5432",
			Products: map[string]internal.ProductPricing{
				"노지감귤 3kg 소과":        {SupplyPrice: 11100, DisplayName: "노지감귤 3kg 소과"},
				"노지감귤 3kg 로얄과(S/M)":  {SupplyPrice: 10500, DisplayName: "노지감귤 3kg 로얄과(S/M)"},
				"노지감귤 3kg 중대과(L/L2)": {SupplyPrice: 8700, DisplayName: "노지감귤 3kg 중대과(L/L2)"},
				"노지감귤 5kg 소과(2S)":    {SupplyPrice: 15500, DisplayName: "노지감귤 5kg 소과(2S)"},
				"노지감귤 5kg 로얄과(S/M)":  {SupplyPrice: 14500, DisplayName: "노지감귤 5kg 로얄과(S/M)"},
				"노지감귤 5kg 중대과(L/L2)": {SupplyPrice: 11500, DisplayName: "노지감귤 5kg 중대과(L/L2)"},
				"노지감귤 9kg 소과":        {SupplyPrice: 25000, DisplayName: "노지감귤 9kg 소과"},
				"노지감귤 9kg 로얄과(S/M)":  {SupplyPrice: 22300, DisplayName: "노지감귤 9kg 로얄과(S/M)"},
				"노지감귤 9kg 중대과(L/L2)": {SupplyPrice: 17800, DisplayName: "노지감귤 9kg 중대과(L/L2)"},
			},
		},
	}
}
