package main

import (
	"fmt"
	"log"
	"time"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/joho/godotenv"
)

// 作品集初始数据填充器：按实体逐项检查，已有数据时跳过，可安全重复执行。
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始填充作品集数据...")

	seedPersonalInfo()
	seedAbout()
	seedSocialLinks()
	seedProjects()
	seedSkills()
	seedExperience()
	seedCertifications()
	seedEducation()

	fmt.Println("作品集数据填充完成！")
}

func seedPersonalInfo() {
	var count int64
	db.DB.Model(&db.PersonalInfo{}).Count(&count)
	if count > 0 {
		fmt.Println("个人信息已存在，跳过创建")
		return
	}

	db.DB.Create(&db.PersonalInfo{
		Name:         "Jenish Barvaliya",
		Title:        "AI/ML Engineer",
		Subtitle:     "Professional Machine Learning & AI Engineer",
		Location:     "Surat, Gujarat, India",
		Email:        "jenishbarvaliya2012@gmail.com",
		Phone:        "+91 9510007247",
		LinkedIn:     "https://linkedin.com/in/jenish-barvaliya-4b5312369",
		GitHub:       "https://github.com/jenish2917",
		Resume:       "/resume.pdf",
		ProfileImage: "/images/profile.jpg",
		IsActive:     true,
	})

	fmt.Println("✅ 个人信息创建完成")
}

func seedAbout() {
	var count int64
	db.DB.Model(&db.About{}).Count(&count)
	if count > 0 {
		fmt.Println("关于内容已存在，跳过创建")
		return
	}

	db.DB.Create(&db.About{
		Summary: "Results-driven Information Technology student specializing in Machine Learning and Data Science with hands-on internship experience developing AI-driven solutions. Proficient in architecting and deploying end-to-end ML projects using Python, TensorFlow, and Scikit-learn. Demonstrated expertise in data pipeline development, model optimization, and predictive analytics. Seeking challenging international opportunities to apply strong foundation in data analysis and machine learning to solve complex business problems and deliver measurable impact in technology-driven organizations.",
		Vision:  "To become a leading AI/ML engineer contributing to innovative solutions that bridge the gap between AI research and real-world applications, making technology accessible and beneficial for everyone.",
		Highlights: db.StringList{
			"AI/ML Engineer Intern with hands-on experience at Elite Technocrats",
			"Specialized in Machine Learning, Data Science, and AI-driven solutions",
			"Proficient in Python, TensorFlow, Scikit-learn, and modern ML frameworks",
			"Demonstrated expertise in data pipeline development and model optimization",
			"B.Tech IT student with 9.34/10.0 CGPA from SCET, Surat",
			"Proven track record in developing high-accuracy ML models (78-94% accuracy)",
		},
		IsActive: true,
	})

	fmt.Println("✅ 关于内容创建完成")
}

func seedSocialLinks() {
	var count int64
	db.DB.Model(&db.SocialLink{}).Count(&count)
	if count > 0 {
		fmt.Println("社交链接已存在，跳过创建")
		return
	}

	links := []db.SocialLink{
		{Name: "GitHub", URL: "https://github.com/jenish2917", Icon: "Github", Color: "#ffffff", Order: 1, IsActive: true},
		{Name: "LinkedIn", URL: "https://linkedin.com/in/jenish-barvaliya-4b5312369", Icon: "Linkedin", Color: "#0077b5", Order: 2, IsActive: true},
		{Name: "Email", URL: "mailto:jenishbarvaliya2012@gmail.com", Icon: "Mail", Color: "#ea4335", Order: 3, IsActive: true},
		{Name: "Twitter", URL: "https://twitter.com/jenish_barvaliya", Icon: "Twitter", Color: "#1da1f2", Order: 4, IsActive: true},
	}
	for i := range links {
		db.DB.Create(&links[i])
	}

	fmt.Println("✅ 社交链接创建完成")
}

func seedProjects() {
	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count > 0 {
		fmt.Println("项目已存在，跳过创建")
		return
	}

	projects := []db.Project{
		{
			Title:           "Fantasy Cricket Team Predictor",
			Description:     "Engineered ML recommendation engine for Dream11 fantasy teams with 78% prediction accuracy using real-time player data",
			LongDescription: "Engineered ML recommendation engine for Dream11 fantasy teams with 78% prediction accuracy using real-time player data. Implemented comprehensive data pipeline with web scraping using BeautifulSoup and Selenium. Deployed ensemble learning approach combining Random Forest, XGBoost, and logistic regression models for optimal team selection.",
			Technologies:    db.StringList{"Python", "Machine Learning", "Random Forest", "XGBoost", "BeautifulSoup", "Selenium", "Data Analytics", "Web Scraping"},
			GithubURL:       "https://github.com/jenish2917/dream11-team-predictor",
			Status:          db.ProjectStatusCompleted,
			IsFeatured:      true,
		},
		{
			Title:           "Spam Detection Classifier",
			Description:     "Developed multi-class spam detection classifier achieving 94% accuracy and 92% F1-score using TF-IDF vectorization and supervised learning",
			LongDescription: "Developed multi-class spam detection classifier achieving 94% accuracy and 92% F1-score using TF-IDF vectorization and supervised learning. Implemented comprehensive text preprocessing pipeline with regex-based cleaning, stopword removal. Compared performance of multiple algorithms including Naive Bayes, SVM, Random Forest, and Gradient Boosting for optimal model selection.",
			Technologies:    db.StringList{"Python", "NLP", "TF-IDF", "Naive Bayes", "SVM", "Random Forest", "Gradient Boosting", "Scikit-learn", "Text Preprocessing"},
			GithubURL:       "https://github.com/jenish2917/Email-sms-spam-detection",
			Status:          db.ProjectStatusCompleted,
			IsFeatured:      true,
		},
		{
			Title:           "Movie Recommendation System",
			Description:     "Built scalable recommendation system using collaborative filtering and content-based algorithms with 85% accuracy",
			LongDescription: "Built scalable recommendation system using collaborative filtering and content-based algorithms. Implemented matrix factorization techniques (SVD, NMF) and cosine similarity algorithms for personalized movie suggestions. Developed hybrid recommendation approach combining user-based and item-based collaborative filtering with 85% accuracy.",
			Technologies:    db.StringList{"Python", "Collaborative Filtering", "Content-Based Filtering", "SVD", "NMF", "Cosine Similarity", "Matrix Factorization", "Pandas", "NumPy"},
			GithubURL:       "https://github.com/jenish2917/movie-recommendation-system",
			Status:          db.ProjectStatusCompleted,
			IsFeatured:      true,
		},
	}
	for i := range projects {
		db.DB.Create(&projects[i])
	}

	fmt.Printf("✅ 项目创建完成（%d 个）\n", len(projects))
}

func seedSkills() {
	var count int64
	db.DB.Model(&db.Skill{}).Count(&count)
	if count > 0 {
		fmt.Println("技能已存在，跳过创建")
		return
	}

	skills := []db.Skill{
		// 编程语言
		{Name: "Python", Category: db.SkillCategoryProgramming, Level: 90, Icon: "🐍"},
		{Name: "Java", Category: db.SkillCategoryProgramming, Level: 80, Icon: "☕"},
		{Name: "C", Category: db.SkillCategoryProgramming, Level: 75, Icon: "⚡"},
		{Name: "JavaScript", Category: db.SkillCategoryProgramming, Level: 85, Icon: "🟨"},
		{Name: "SQL", Category: db.SkillCategoryProgramming, Level: 80, Icon: "🗃️"},

		// 机器学习与数据科学
		{Name: "Scikit-learn", Category: db.SkillCategoryMLAI, Level: 90, Icon: "🤖"},
		{Name: "Pandas", Category: db.SkillCategoryDataScience, Level: 95, Icon: "🐼"},
		{Name: "NumPy", Category: db.SkillCategoryDataScience, Level: 90, Icon: "🔢"},
		{Name: "Polars", Category: db.SkillCategoryDataScience, Level: 75, Icon: "⚡"},
		{Name: "Matplotlib", Category: db.SkillCategoryDataScience, Level: 85, Icon: "📊"},
		{Name: "Seaborn", Category: db.SkillCategoryDataScience, Level: 85, Icon: "📈"},
		{Name: "Natural Language Processing", Category: db.SkillCategoryMLAI, Level: 80, Icon: "🗣️"},
		{Name: "TensorFlow", Category: db.SkillCategoryMLAI, Level: 85, Icon: "🧠"},
		{Name: "Keras", Category: db.SkillCategoryMLAI, Level: 80, Icon: "🔥"},

		// Web 技术与自动化
		{Name: "Django", Category: db.SkillCategoryWebDev, Level: 85, Icon: "🐍"},
		{Name: "React.js", Category: db.SkillCategoryWebDev, Level: 80, Icon: "⚛️"},
		{Name: "REST APIs", Category: db.SkillCategoryWebDev, Level: 85, Icon: "🔗"},
		{Name: "Selenium", Category: db.SkillCategoryTools, Level: 75, Icon: "🔧"},
		{Name: "Playwright", Category: db.SkillCategoryTools, Level: 70, Icon: "🎭"},

		// 开发工具与平台
		{Name: "Git", Category: db.SkillCategoryTools, Level: 85, Icon: "📝"},
		{Name: "GitHub", Category: db.SkillCategoryTools, Level: 85, Icon: "🐙"},
		{Name: "Jupyter Notebooks", Category: db.SkillCategoryTools, Level: 90, Icon: "📓"},
	}
	for i := range skills {
		db.DB.Create(&skills[i])
	}

	fmt.Printf("✅ 技能创建完成（%d 项）\n", len(skills))
}

func seedExperience() {
	var count int64
	db.DB.Model(&db.Experience{}).Count(&count)
	if count > 0 {
		fmt.Println("工作经历已存在，跳过创建")
		return
	}

	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	db.DB.Create(&db.Experience{
		Title:     "AI/ML Engineer Intern",
		Company:   "Elite Technocrats",
		Location:  "Surat, Gujarat, India",
		StartDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &endDate,
		IsCurrent: false,
		Description: db.StringList{
			"Developed and deployed AI-powered documentation automation tool using Django and React.js, reducing manual documentation time by 60%",
			"Architected robust data pipeline for preprocessing, validating, and transforming large-scale datasets, ensuring 99% data integrity for downstream NLP and machine learning workflows",
			"Integrated advanced machine learning, deep learning, and large language models (LLMs) to generate intelligent, context-aware technical content with 85% accuracy",
		},
		Technologies: db.StringList{"Python", "Django", "React.js", "Machine Learning", "Deep Learning", "NLP", "LLMs", "Data Pipeline"},
	})

	fmt.Println("✅ 工作经历创建完成")
}

func seedCertifications() {
	var count int64
	db.DB.Model(&db.Certification{}).Count(&count)
	if count > 0 {
		fmt.Println("证书已存在，跳过创建")
		return
	}

	certifications := []db.Certification{
		{
			Title:           "Foundation Course on Green Skills and Artificial Intelligence",
			Issuer:          "Skills4Future Program - AICTE & Edunet Foundation",
			DateIssued:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Description:     "Comprehensive foundation course covering Green Skills integration with Artificial Intelligence technologies",
			VerificationURL: "https://drive.google.com/file/d/1-Y9t-30E50JBxOdNqH-DiH6p8uGiFokG/view?usp=sharing",
			CredentialID:    "AICTE-AI-2025-JB",
		},
		{
			Title:           "GenAI Powered Data Analytics Job Simulation",
			Issuer:          "Forage - Data Analytics & AI Collections Strategy",
			DateIssued:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Description:     "Practical job simulation focusing on Generative AI applications in data analytics and business strategy",
			VerificationURL: "https://drive.google.com/file/d/1ugUh0pVpMiMgldPnV-DbVi7WWZvwQAip/view?usp=sharing",
			CredentialID:    "FORAGE-GENAI-2025-JB",
		},
	}
	for i := range certifications {
		db.DB.Create(&certifications[i])
	}

	fmt.Printf("✅ 证书创建完成（%d 项）\n", len(certifications))
}

func seedEducation() {
	var count int64
	db.DB.Model(&db.Education{}).Count(&count)
	if count > 0 {
		fmt.Println("教育经历已存在，跳过创建")
		return
	}

	endDate := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	db.DB.Create(&db.Education{
		Degree:      "Bachelor of Technology (B.Tech) in Information Technology",
		Institution: "Sarvajanik College of Engineering and Technology",
		Location:    "Surat, Gujarat, India",
		StartDate:   time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     &endDate,
		IsCurrent:   true,
		GPA:         "9.34/10.0",
		Description: "Specialized in Software Engineering, Data Structures, Algorithms, Database Systems, and Artificial Intelligence with focus on Machine Learning and Data Science",
		Coursework: db.StringList{
			"Data Structures and Algorithms",
			"Machine Learning",
			"Artificial Intelligence",
			"Database Management Systems",
			"Software Engineering",
			"Computer Networks",
			"Web Technologies",
			"Operating Systems",
			"Natural Language Processing",
			"Deep Learning",
		},
	})

	fmt.Println("✅ 教育经历创建完成")
}
