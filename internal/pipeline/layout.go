package pipeline

import (
	"strings"

	"wingorder/internal"
	"wingorder/internal/util"
)

// Master order sheet fixed columns. The sales channel export always
// lands these fields in the same positions regardless of header text.
const (
	colOrderNumber = 2
	colGroup       = 10
	colProduct     = 11
	colQuantity    = 22
	colRecipient   = 26
	colPhone       = 27
	colZip         = 28
	colAddress     = 29
	colMessage     = 30
)

const (
	senderName    = "안군농원"
	senderPhone   = "01042626343"
	senderAddress = "제주도"

	kimchiSenderName  = "미래찬"
	kimchiSenderPhone = "070-5222-6543"
	kimchiSenderZip   = "25346"
	kimchiSenderAddr  = "강원 평창군 방림면 평창대로84-15"

	manualOrderMark = "수동"
)

// Keywords returns the group-column keywords that claim a master-file
// row for a company. Companies without a hardcoded set are matched by
// their own name, split on commas.
func Keywords(company string) []string {
	switch {
	case company == "제이제이" || company == "귤_제이":
		return []string{"귤_제이", "은갈치", "순살 갈치", "한라봉_J"}
	case company == "연두":
		return []string{"총각김치", "포기김치", "배추김치"}
	case company == "답도" || company == "한라봉_답도":
		return []string{"한라봉", "답도", "한라봉_답도"}
	case company == "웰그린":
		return []string{"구좌 당근", "과일선물세트", "부사 사과", "부사사과"}
	case company == "팜플로우":
		return []string{"과일선물세트"}
	}
	parts := strings.Split(company, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// GroupMatches reports whether a group cell belongs to the keyword set,
// comparing with all whitespace stripped on both sides.
func GroupMatches(groupCell string, keywords []string) bool {
	val := util.StripSpaces(groupCell)
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if strings.Contains(val, util.StripSpaces(k)) {
			return true
		}
	}
	return false
}

// CarrierFor names the courier each vendor ships with.
func CarrierFor(company string) string {
	switch company {
	case "신선마켓", "귤_신선", "고랭지김치":
		return "롯데택배"
	case "홍게", "홍게2", "귤_초록", "꽃게", "답도", "한라봉_답도":
		return "CJ 대한통운"
	case "제이제이", "귤_제이":
		return "한진택배"
	case "웰그린", "팜플로우":
		return "롯데택배"
	}
	return "우체국"
}

func isYeondu(company string) bool {
	switch company {
	case "연두", "총각김치", "포기김치", "배추김치":
		return true
	}
	return false
}

func isYeonduMerge(company string) bool {
	return isYeondu(company) || company == "총각김치,포기김치"
}

// HeadersFor returns the vendor order-form header row. Vendors without
// a dedicated layout use their configured headers, or the generic
// seven-column form.
func HeadersFor(company string, cfg internal.CompanyConfig) []string {
	switch {
	case company == "팜플로우":
		return []string{"출고번호", "받으시는 분 이름", "받으시는 분 전화", "받는분 주소", "배송메세지", "품목명", "수량", "보내시는 분", "보내시는 분 전화", "보내시는분 주소", "메모1", "택배사", "송장번호"}
	case company == "웰그린":
		return []string{"", "쇼핑몰주문번호", "쇼핑몰", "상품명", "옵션(품목명)", "수량", "배송메세지", "", "", "받는분성명", "주문자", "받는분연락처", "주문자연락처", "", "우편번호", "받는분주소(전체, 분할)", "", "판매처연락처", "판매처주소"}
	case company == "답도" || company == "한라봉_답도":
		return []string{"주문번호", "기재안해도됨", "송하인", "송하인 연락처", "수취인", "수취인 연락처", "주소", "상품명", "수량", "배송 메세지", "송장번호"}
	case company == "신선마켓" || company == "귤_신선":
		return []string{"주문번호", "품목명", "수량", "받는사람", "전화번호", "", "", "우편번호", "주소", "배송메세지"}
	case company == "고랭지김치":
		return []string{"주문번호", "보내는사람", "전화번호1", "전화번호2", "우편번호", "주소", "받는사람", "전화번호1", "전화번호2", "우편번호", "주소", "상품명1", "상품상세1", "수량(A타입)", "수량(B타입)", "배송메시지", "운임구분", "운임"}
	case isYeondu(company):
		return []string{"주문번호", "고객주문처명", "수취인명", "수취인 우편번호", "수취인 주소", "수취인 전화번호", "수취인 이동통신", "상품명", "상품모델", "배송메세지", "비고", "수량", "신청건수", "포장재", "부피단위"}
	}
	if len(cfg.OrderFormHeaders) > 0 {
		return cfg.OrderFormHeaders
	}
	return []string{"받는사람", "전화번호", "주소", "품목명", "수량", "배송메세지", "주문번호"}
}

func at(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// BuildOrderRows renders one single-unit form row per ordered unit.
func BuildOrderRows(company string, row []string, displayName string, qty int, cfg internal.CompanyConfig) [][]string {
	out := make([][]string, 0, qty)
	for j := 0; j < qty; j++ {
		out = append(out, buildOrderRow(company, row, displayName, cfg))
	}
	return out
}

func buildOrderRow(company string, row []string, displayName string, cfg internal.CompanyConfig) []string {
	switch {
	case company == "팜플로우":
		or := make([]string, 13)
		or[0] = at(row, colOrderNumber)
		or[1] = at(row, colRecipient)
		or[2] = at(row, colPhone)
		or[3] = at(row, colAddress)
		or[4] = at(row, colMessage)
		or[5] = displayName
		or[6] = "1"
		or[7] = senderName
		or[8] = senderPhone
		or[9] = senderAddress
		return or
	case company == "웰그린":
		or := make([]string, 19)
		or[1] = at(row, colOrderNumber)
		or[2] = senderName
		or[3] = at(row, colProduct)
		or[4] = displayName
		or[5] = "1"
		or[6] = at(row, colMessage)
		or[9] = at(row, colRecipient)
		or[10] = at(row, colRecipient)
		or[11] = at(row, colPhone)
		or[12] = at(row, colPhone)
		or[14] = at(row, colZip)
		or[15] = at(row, colAddress)
		or[17] = senderPhone
		return or
	case company == "답도" || company == "한라봉_답도":
		or := make([]string, 11)
		or[0] = at(row, colOrderNumber)
		or[2] = senderName
		or[3] = senderPhone
		or[4] = at(row, colRecipient)
		or[5] = at(row, colPhone)
		or[6] = at(row, colAddress)
		or[7] = displayName
		or[8] = "1"
		or[9] = at(row, colMessage)
		return or
	case isYeondu(company):
		or := make([]string, 15)
		or[0] = at(row, colOrderNumber)
		or[1] = senderName
		or[2] = at(row, colRecipient)
		or[3] = at(row, colZip)
		or[4] = at(row, colAddress)
		or[5] = at(row, colPhone)
		or[6] = at(row, colPhone)
		or[7] = displayName
		or[8] = displayName
		or[9] = at(row, colMessage)
		or[11] = "1"
		or[12] = "1"
		return or
	case company == "고랭지김치":
		or := make([]string, 18)
		or[0] = at(row, colOrderNumber)
		or[1] = kimchiSenderName
		or[2] = kimchiSenderPhone
		or[3] = kimchiSenderPhone
		or[4] = kimchiSenderZip
		or[5] = kimchiSenderAddr
		or[6] = at(row, colRecipient)
		or[7] = at(row, colPhone)
		or[8] = at(row, colPhone)
		or[9] = at(row, colZip)
		or[10] = at(row, colAddress)
		or[11] = displayName
		or[12] = displayName
		setKimchiQty(or, displayName)
		or[15] = at(row, colMessage)
		return or
	}
	if len(cfg.OrderFormHeaders) > 0 {
		or := make([]string, len(cfg.OrderFormHeaders))
		for idx, h := range cfg.OrderFormHeaders {
			switch {
			case strings.Contains(h, "받는분성명") || strings.Contains(h, "받는사람"):
				or[idx] = at(row, colRecipient)
			case strings.Contains(h, "받는분연락처") || strings.Contains(h, "전화번호"):
				or[idx] = at(row, colPhone)
			case strings.Contains(h, "받는분주소") || strings.Contains(h, "주소"):
				or[idx] = at(row, colAddress)
			case strings.Contains(h, "품목") || strings.Contains(h, "상품명"):
				or[idx] = displayName
			case strings.Contains(h, "수량"):
				or[idx] = "1"
			case strings.Contains(h, "주문번호"):
				or[idx] = at(row, colOrderNumber)
			case strings.Contains(h, "배송메세지"):
				or[idx] = at(row, colMessage)
			case strings.Contains(h, "송하인"):
				or[idx] = senderName
			}
		}
		return or
	}
	return []string{at(row, colRecipient), at(row, colPhone), at(row, colAddress), displayName, "1", at(row, colMessage), at(row, colOrderNumber)}
}

// 고랭지김치 splits the quantity across two columns by box size:
// 7kg/10kg packs go to B타입, the rest to A타입.
func setKimchiQty(or []string, displayName string) {
	name := strings.ToLower(displayName)
	if strings.Contains(name, "7kg") || strings.Contains(name, "10kg") {
		or[14] = "1"
	} else {
		or[13] = "1"
	}
}

// BuildManualOrderRows renders form rows for a phone-in order that has
// no master-file row. The order-number slot carries the 수동 mark.
func BuildManualOrderRows(company string, mo internal.ManualOrder, displayName string, cfg internal.CompanyConfig) [][]string {
	out := make([][]string, 0, mo.Qty)
	for j := 0; j < mo.Qty; j++ {
		out = append(out, buildManualOrderRow(company, mo, displayName, cfg))
	}
	return out
}

func buildManualOrderRow(company string, mo internal.ManualOrder, displayName string, cfg internal.CompanyConfig) []string {
	switch {
	case company == "팜플로우":
		or := make([]string, 13)
		or[0] = manualOrderMark
		or[1] = mo.RecipientName
		or[2] = mo.Phone
		or[3] = mo.Address
		or[5] = displayName
		or[6] = "1"
		or[7] = senderName
		or[8] = senderPhone
		or[9] = senderAddress
		return or
	case company == "웰그린":
		or := make([]string, 19)
		or[1] = manualOrderMark
		or[2] = senderName
		or[4] = displayName
		or[5] = "1"
		or[9] = mo.RecipientName
		or[10] = mo.RecipientName
		or[11] = mo.Phone
		or[12] = mo.Phone
		or[15] = mo.Address
		or[17] = senderPhone
		return or
	case company == "답도" || company == "한라봉_답도":
		or := make([]string, 11)
		or[0] = manualOrderMark
		or[2] = senderName
		or[3] = senderPhone
		or[4] = mo.RecipientName
		or[5] = mo.Phone
		or[6] = mo.Address
		or[7] = displayName
		or[8] = "1"
		return or
	case isYeondu(company):
		or := make([]string, 15)
		or[0] = manualOrderMark
		or[1] = senderName
		or[2] = mo.RecipientName
		or[4] = mo.Address
		or[5] = mo.Phone
		or[6] = mo.Phone
		or[7] = displayName
		or[8] = displayName
		or[11] = "1"
		or[12] = "1"
		return or
	case company == "고랭지김치":
		or := make([]string, 18)
		or[0] = manualOrderMark
		or[1] = kimchiSenderName
		or[2] = kimchiSenderPhone
		or[3] = kimchiSenderPhone
		or[4] = kimchiSenderZip
		or[5] = kimchiSenderAddr
		or[6] = mo.RecipientName
		or[7] = mo.Phone
		or[8] = mo.Phone
		or[10] = mo.Address
		or[11] = displayName
		or[12] = displayName
		setKimchiQty(or, displayName)
		return or
	case company == "제이제이" || company == "귤_제이":
		or := make([]string, 9)
		or[0] = senderName
		or[3] = displayName
		or[4] = mo.RecipientName
		or[5] = mo.Address
		or[6] = mo.Phone
		or[8] = manualOrderMark
		return or
	}
	if len(cfg.OrderFormHeaders) > 0 {
		or := make([]string, len(cfg.OrderFormHeaders))
		for idx, h := range cfg.OrderFormHeaders {
			switch {
			case strings.Contains(h, "받는분성명") || strings.Contains(h, "받는사람"):
				or[idx] = mo.RecipientName
			case strings.Contains(h, "받는분연락처") || strings.Contains(h, "전화번호"):
				or[idx] = mo.Phone
			case strings.Contains(h, "받는분주소") || strings.Contains(h, "주소"):
				or[idx] = mo.Address
			case strings.Contains(h, "품목") || strings.Contains(h, "상품명"):
				or[idx] = displayName
			case strings.Contains(h, "수량"):
				or[idx] = "1"
			case strings.Contains(h, "주문번호"):
				or[idx] = manualOrderMark
			case strings.Contains(h, "송하인"):
				or[idx] = senderName
			}
		}
		return or
	}
	return []string{mo.RecipientName, mo.Phone, mo.Address, displayName, "1", "", manualOrderMark}
}
