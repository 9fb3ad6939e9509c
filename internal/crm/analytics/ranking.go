package analytics

import (
	"sort"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

const (
	productKeyPrefix = "PROD-"
	productKeyLength = 6
)

// ProductSummary 产品排行（按订单号派生的伪物料）
type ProductSummary struct {
	Material    string  `json:"material"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// ProductKey derives the synthetic material key for an order. Order headers
// carry no line items at this layer, so orders sharing the first six
// characters of their number are treated as one product. This is a proxy
// grouping, not a catalogue join.
func ProductKey(orderNo string) string {
	prefix := orderNo
	if len(prefix) > productKeyLength {
		prefix = prefix[:productKeyLength]
	}
	return productKeyPrefix + prefix
}

// TopProducts aggregates item count and revenue per ProductKey and returns at
// most limit entries by descending revenue.
func TopProducts(orders []entity.Order, limit int) []ProductSummary {
	byKey := make(map[string]*ProductSummary)
	for _, o := range orders {
		key := ProductKey(o.OrderNo)
		p, ok := byKey[key]
		if !ok {
			p = &ProductSummary{Material: key, Description: "Paper Product " + key}
			byKey[key] = p
		}
		p.Quantity += o.ItemsCount
		p.Revenue += o.NetValue
	}

	products := make([]ProductSummary, 0, len(byKey))
	for _, p := range byKey {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Revenue != products[j].Revenue {
			return products[i].Revenue > products[j].Revenue
		}
		return products[i].Material < products[j].Material
	})
	return truncate(products, limit)
}

// CustomerRanking 客户销售排行
type CustomerRanking struct {
	CustomerNo   string  `json:"customer_no"`
	CustomerName string  `json:"customer_name"`
	Orders       int     `json:"orders"`
	Revenue      float64 `json:"revenue"`
}

// TopCustomers groups orders by customer and ranks by revenue. Orders that
// reference an unknown customer are left out.
func TopCustomers(customers []entity.Customer, orders []entity.Order, limit int) []CustomerRanking {
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.CustomerNo] = c.LegalName
	}

	byCustomer := make(map[string]*CustomerRanking)
	for _, o := range orders {
		name, known := names[o.CustomerNo]
		if !known {
			continue
		}
		r, ok := byCustomer[o.CustomerNo]
		if !ok {
			r = &CustomerRanking{CustomerNo: o.CustomerNo, CustomerName: name}
			byCustomer[o.CustomerNo] = r
		}
		r.Orders++
		r.Revenue += o.NetValue
	}

	rankings := make([]CustomerRanking, 0, len(byCustomer))
	for _, r := range byCustomer {
		rankings = append(rankings, *r)
	}
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Revenue != rankings[j].Revenue {
			return rankings[i].Revenue > rankings[j].Revenue
		}
		return rankings[i].CustomerNo < rankings[j].CustomerNo
	})
	return truncate(rankings, limit)
}

// GroupRevenue 分组营收（细分/区域）
type GroupRevenue struct {
	Key       string  `json:"key"`
	Customers int     `json:"customers"`
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

func SegmentBreakdown(customers []entity.Customer, orders []entity.Order) []GroupRevenue {
	return breakdown(customers, orders, func(c entity.Customer) string { return string(c.Segment) })
}

func TerritoryBreakdown(customers []entity.Customer, orders []entity.Order) []GroupRevenue {
	return breakdown(customers, orders, func(c entity.Customer) string { return string(c.Territory) })
}

// breakdown groups customers by key and sums the revenue of their orders.
// Every group with at least one customer is present, even at zero revenue.
func breakdown(customers []entity.Customer, orders []entity.Order, key func(entity.Customer) string) []GroupRevenue {
	groupOf := make(map[string]string, len(customers))
	groups := make(map[string]*GroupRevenue)
	for _, c := range customers {
		k := key(c)
		groupOf[c.CustomerNo] = k
		g, ok := groups[k]
		if !ok {
			g = &GroupRevenue{Key: k}
			groups[k] = g
		}
		g.Customers++
	}

	for _, o := range orders {
		k, ok := groupOf[o.CustomerNo]
		if !ok {
			continue
		}
		groups[k].Orders++
		groups[k].Revenue += o.NetValue
	}

	out := make([]GroupRevenue, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func truncate[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
