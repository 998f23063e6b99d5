package match

import "strings"

// synonymEntry maps a canonical customer-service term to its interchangeable
// variants. Entries are kept in a slice, not a map, so lookups scan in
// declaration order and the same token always resolves to the same entry.
type synonymEntry struct {
	key      string
	variants []string
}

// synonymTable is the static one-hop synonym table. Lookup consults exactly
// one entry even when a token could reach several entries through different
// variants, and groups are not transitively closed. Both are intentional:
// widening the lookup would change scoring outcomes.
var synonymTable = []synonymEntry{
	{"区别", []string{"差异", "不同", "差别", "差距"}},
	{"价格", []string{"费用", "多少钱", "价钱", "售价"}},
	{"退款", []string{"退钱", "退货", "退单"}},
	{"发货", []string{"配送", "快递", "物流", "寄出"}},
	{"保质期", []string{"有效期", "期限"}},
	{"成分", []string{"配料", "原料"}},
	{"优惠", []string{"折扣", "促销", "活动"}},
	{"使用", []string{"用法", "食用", "服用"}},
	{"购买", []string{"下单", "订购"}},
	{"客服", []string{"人工", "专员"}},
	{"修改", []string{"更改", "变更", "更换"}},
	{"取消", []string{"撤销", "退订"}},
	{"地址", []string{"收货地址", "收件地址"}},
	{"发票", []string{"票据", "开票"}},
	{"保存", []string{"储存", "存放", "贮存"}},
	{"适合", []string{"适用", "适宜"}},
	{"儿童", []string{"小孩", "宝宝", "孩子"}},
	{"孕妇", []string{"怀孕", "孕期"}},
	{"过敏", []string{"敏感", "不耐受"}},
	{"正品", []string{"真品", "正货"}},
}

// ExpandSynonyms expands a single token into its one-hop synonym group.
//
// The token is case-folded, then the table is scanned in declaration order;
// the first entry whose key or variants contain the token contributes its
// key and all variants to the group. Containment (not just equality) is what
// lets single-ideograph tokens reach multi-character table terms. A token
// with no table entry expands to the singleton group of itself.
func ExpandSynonyms(token string) []string {
	token = strings.ToLower(token)
	group := []string{token}
	if token == "" {
		return group
	}

	for _, entry := range synonymTable {
		if !entryContains(entry, token) {
			continue
		}
		if entry.key != token {
			group = append(group, entry.key)
		}
		for _, variant := range entry.variants {
			if variant != token {
				group = append(group, variant)
			}
		}
		break
	}
	return group
}

func entryContains(entry synonymEntry, token string) bool {
	if strings.Contains(entry.key, token) {
		return true
	}
	for _, variant := range entry.variants {
		if strings.Contains(variant, token) {
			return true
		}
	}
	return false
}
