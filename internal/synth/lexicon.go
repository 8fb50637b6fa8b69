package synth

import "golang.org/x/text/language"

// lexicon holds the word pools for one synthesis locale.
type lexicon struct {
	firstNames []string
	lastNames  []string
	streets    []string
	cities     []string
	states     []string
	countries  []string
	jobs       []string
	words      []string
	sentences  []string
}

var lexicons = map[language.Tag]*lexicon{
	language.English: {
		firstNames: []string{
			"James", "Mary", "Robert", "Patricia", "John", "Jennifer",
			"Michael", "Linda", "David", "Elizabeth", "William", "Barbara",
			"Richard", "Susan", "Joseph", "Jessica", "Thomas", "Karen",
		},
		lastNames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
			"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez",
			"Lopez", "Gonzalez", "Wilson", "Anderson", "Taylor",
		},
		streets: []string{
			"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane",
			"Park Boulevard", "Washington Street", "Lake Road",
			"Hill Street", "River Road", "Church Street",
		},
		cities: []string{
			"Springfield", "Riverside", "Franklin", "Greenville",
			"Bristol", "Clinton", "Fairview", "Salem", "Madison",
			"Georgetown", "Arlington", "Ashland",
		},
		states: []string{
			"California", "Texas", "New York", "Florida", "Illinois",
			"Pennsylvania", "Ohio", "Georgia", "Michigan", "Virginia",
			"Washington", "Oregon", "Colorado", "Arizona",
		},
		countries: []string{
			"United States", "Canada", "United Kingdom", "Australia",
			"Germany", "France", "Italy", "Spain", "Netherlands",
			"Sweden", "Ireland", "New Zealand",
		},
		jobs: []string{
			"Accountant", "Sales Manager", "Programmer", "Analyst",
			"Clerk", "Consultant", "Engineer", "Administrator",
			"Representative", "Specialist", "Director", "Supervisor",
		},
		words: []string{
			"alpha", "harbor", "meadow", "copper", "violet", "summit",
			"willow", "ember", "anchor", "breeze", "canyon", "drift",
			"falcon", "garnet", "hollow", "juniper",
		},
		sentences: []string{
			"The quarterly report highlighted steady growth across all regions.",
			"Inventory levels were reconciled against the warehouse ledger.",
			"Customer feedback continues to shape the product roadmap.",
			"The committee approved the revised budget without objection.",
			"Shipping delays were traced to a scheduling conflict at the depot.",
			"Training sessions are held on the first Monday of each month.",
		},
	},
	language.Japanese: {
		firstNames: []string{
			"太郎", "花子", "一郎", "美咲", "健太", "さくら",
			"大輔", "優子", "翔太", "愛", "直樹", "恵美",
		},
		lastNames: []string{
			"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺",
			"山本", "中村", "小林", "加藤", "吉田", "山田",
		},
		streets: []string{
			"中央1丁目2-3", "本町4丁目5-6", "栄町7丁目8-9",
			"旭町1丁目10-2", "緑町3丁目1-4", "寿町2丁目6-7",
		},
		cities: []string{
			"東京", "横浜", "大阪", "名古屋", "札幌", "福岡",
			"神戸", "京都", "仙台", "広島", "川崎", "さいたま",
		},
		states: []string{
			"東京都", "大阪府", "北海道", "神奈川県", "愛知県",
			"福岡県", "兵庫県", "京都府", "宮城県", "広島県",
		},
		countries: []string{"日本"},
		jobs: []string{
			"営業部長", "経理担当", "システムエンジニア", "事務員",
			"販売員", "技術者", "管理者", "主任", "課長", "部長",
		},
		words: []string{
			"寿", "桜", "松", "竹", "梅", "鶴", "亀", "泉",
			"森", "川", "山", "海",
		},
		sentences: []string{
			"四半期の報告書では全地域で着実な成長が示された。",
			"在庫数は倉庫台帳と照合済みである。",
			"顧客からの意見は製品計画に反映される。",
			"委員会は修正予算を異議なく承認した。",
			"出荷の遅延は配送拠点の日程調整が原因だった。",
			"研修は毎月第一月曜日に実施される。",
		},
	},
}
